// Package xzalgochain provides the XzalgoChain keyless hash function.
// The xzalgo320 subpackage implements the 320-bit variant, which absorbs
// an arbitrary byte stream in 128-byte blocks and folds the state through
// a two-level permutation network into a 40-byte digest.
package xzalgochain
