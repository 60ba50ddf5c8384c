package fingerprint

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/pgschema/pgdsl/dsl"
)

// SchemaFingerprint identifies the DDL produced by a construction pass
type SchemaFingerprint struct {
	Hash string `json:"hash"` // SHA256 of the rendered statements
}

// hashedStatement leaves out the source location so that moving a builder
// call around does not change the fingerprint
type hashedStatement struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	SQL  string `json:"sql"`
}

// ComputeFingerprint generates a fingerprint for the given statements
func ComputeFingerprint(stmts []dsl.Statement) (*SchemaFingerprint, error) {
	hashed := make([]hashedStatement, len(stmts))
	for i, s := range stmts {
		hashed[i] = hashedStatement{Kind: s.Kind, Name: s.Name, SQL: s.SQL}
	}

	hash, err := hashObject(hashed)
	if err != nil {
		return nil, fmt.Errorf("failed to compute schema hash: %w", err)
	}

	return &SchemaFingerprint{
		Hash: hash,
	}, nil
}

// hashObject computes a SHA256 hash of any object
func hashObject(obj interface{}) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

// Short returns the first 16 hex digits of the hash
func (f *SchemaFingerprint) Short() string {
	if len(f.Hash) > 16 {
		return f.Hash[:16]
	}
	return f.Hash
}

// String returns a human-readable representation of the fingerprint
func (f *SchemaFingerprint) String() string {
	return fmt.Sprintf("Schema fingerprint: %s", f.Short())
}
