// Package utils provides small string helpers shared by the sync engines:
// quote normalization for pasted metadata, character-based truncation,
// order-preserving de-duplication and qualified-name splitting.
package utils
