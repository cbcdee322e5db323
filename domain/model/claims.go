package model

import "github.com/golang-jwt/jwt"

// StageClaims identifies the pipeline stage calling the write API.
type StageClaims struct {
	jwt.StandardClaims
	Stage string `json:"stage"`
}
