package file

import "fmt"

// Key layout is part of the external contract (public URLs are built from
// it) and must stay exactly as below.
//
//	live:   {userID}/{fileName}
//	trash:  trash/{userID}/{fileName}
//	avatar: Avatar/{userID}/avatar.{ext}

const (
	TrashPrefix  = "trash/"
	AvatarPrefix = "Avatar/"
)

func LiveKey(userID, fileName string) string {
	return fmt.Sprintf("%s/%s", userID, fileName)
}

func LivePrefix(userID string) string {
	return userID + "/"
}

func TrashKey(userID, fileName string) string {
	return TrashPrefix + LiveKey(userID, fileName)
}

func UserTrashPrefix(userID string) string {
	return TrashPrefix + LivePrefix(userID)
}

func AvatarKey(userID, ext string) string {
	return fmt.Sprintf("%s%s/avatar.%s", AvatarPrefix, userID, ext)
}
