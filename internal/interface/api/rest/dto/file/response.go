package file

import "time"

type (
	Owner struct {
		DisplayName string `json:"display_name"`
		ID          string `json:"id"`
	}

	Object struct {
		Key          string    `json:"key"`
		LastModified time.Time `json:"last_modified"`
		ETag         string    `json:"etag"`
		Size         int64     `json:"size"`
		StorageClass string    `json:"storage_class"`
		Owner        Owner     `json:"owner"`
		URL          string    `json:"url"`
	}
	Objects []Object

	ListingResponse struct {
		TotalFiles int     `json:"total_files"`
		Page       int     `json:"page"`
		Limit      int     `json:"limit"`
		Files      Objects `json:"files"`
	}

	ResponseData struct {
		Data Objects `json:"data"`
	}

	URLResponse struct {
		URL string `json:"url"`
	}
)
