// Package file holds the object-storage side of the domain: object metadata
// as the backend reports it, plus the namespace key layout that scopes every
// object to its owner.
package file

import (
	"time"
)

type (
	// Owner mirrors the bucket-owner block S3 attaches to listed objects.
	Owner struct {
		DisplayName string
		ID          string
	}

	// ObjectRef is the metadata record for one stored object, decorated
	// with a deterministic public URL.
	ObjectRef struct {
		Key          string
		LastModified time.Time
		ETag         string
		Size         int64
		StorageClass string
		Owner        Owner
		URL          string
	}

	ObjectRefs []ObjectRef

	// Listing is a client-side paginated view over a full prefix scan.
	Listing struct {
		TotalFiles int
		Page       int
		Limit      int
		Files      ObjectRefs
	}
)
