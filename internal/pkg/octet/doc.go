// Package octet converts between arbitrary-precision integers and octet strings.
//
// Octet strings are written as uppercase hexadecimal, two digits per byte,
// with no separators and no 0x prefix.
package octet
