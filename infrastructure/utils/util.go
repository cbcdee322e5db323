package utils

import (
	"time"

	"content-pipeline/domain/model"
	"content-pipeline/infrastructure/logger"

	"github.com/golang-jwt/jwt"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// GenerateStageToken signs a bearer token a pipeline stage presents to the write API.
func GenerateStageToken(stage, secretKey string, ttl time.Duration) (string, error) {
	now := GetCurrentTime()
	claims := model.StageClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   stage,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		Stage: stage,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}
