// Package checksum computes digests of converted model files so runs can
// be compared without diffing the XML byte for byte.
package checksum
