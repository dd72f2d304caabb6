// Package expressivo parses polynomial expressions into immutable syntax trees.
//
// The syntax is sums of products of numbers, variables, and parenthesized
// subexpressions: "x * x + 2 * x + 1". Numbers are unsigned decimals like 3 or
// 2.5, and variables are runs of ASCII letters. Multiplication binds tighter
// than addition, and both group left to right, so "a + b + c" is the same tree
// as "(a + b) + c" but not "a + (b + c)".
//
// Trees compare structurally and print in a canonical form that parses back to
// an equal tree.
//
package expressivo
