// Package rsa defines the RSA key model, the processor contracts for key
// generation, RSAES-OAEP encryption and RSASSA-PSS signatures (PKCS#1 v2.2),
// and the error taxonomy those operations surface.
package rsa
