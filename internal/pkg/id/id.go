package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string. User and note IDs both come from here;
// ULIDs spread well as DynamoDB partition keys and still read in creation
// order in logs.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
