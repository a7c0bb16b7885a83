// Package core defines the shared language of the sealion library.
//
// This package contains:
//   - The Row capability implemented by caller record types
//   - The Ptr constraint used by the generic query helpers
//   - The error taxonomy shared by the row and query packages
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
