package auth

import "file-storage-api/internal/interface/api/rest/dto/user"

type (
	TokenPairResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	}

	AccessTokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	SignUpResponse struct {
		User   user.User         `json:"user"`
		Tokens TokenPairResponse `json:"tokens"`
	}
)
