package file

import (
	"file-storage-api/internal/domain/file"
)

func ToResponseObject(ref file.ObjectRef) Object {
	return Object{
		Key:          ref.Key,
		LastModified: ref.LastModified,
		ETag:         ref.ETag,
		Size:         ref.Size,
		StorageClass: ref.StorageClass,
		Owner: Owner{
			DisplayName: ref.Owner.DisplayName,
			ID:          ref.Owner.ID,
		},
		URL: ref.URL,
	}
}

func ToResponseObjects(refs file.ObjectRefs) Objects {
	out := make(Objects, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ToResponseObject(ref))
	}
	return out
}

func ToResponseListing(l file.Listing) ListingResponse {
	return ListingResponse{
		TotalFiles: l.TotalFiles,
		Page:       l.Page,
		Limit:      l.Limit,
		Files:      ToResponseObjects(l.Files),
	}
}
