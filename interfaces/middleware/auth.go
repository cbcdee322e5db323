package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"content-pipeline/domain/dto"
	"content-pipeline/domain/model"
	"content-pipeline/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const StageKey = "stage"

// Auth guards the api group with an HS256 bearer token carrying StageClaims.
// An empty secret leaves the group open.
func Auth(secretKey string) gin.HandlerFunc {
	if secretKey == "" {
		logger.GetLogger().Warn("SECRET_KEY not set, api routes are unauthenticated")
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}

	return func(ctx *gin.Context) {
		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

		authorization := ctx.Request.Header.Get("Authorization")
		raw, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, token, err := getClaim(raw, secretKey)
		if err != nil || !token.Valid {
			res.ResponseMessage = reason(err)
			logger.GetLogger().WithField("error", err).Warn("Rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		if claims.Stage == "" {
			res.ResponseMessage = "Token carries no stage"
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set(StageKey, claims.Stage)
		ctx.Next()
	}
}

func reason(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		switch {
		case ve.Errors&jwt.ValidationErrorMalformed != 0:
			return "That's not even a token"
		case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
			return "Timing is everything"
		}
	}
	return fmt.Sprintf("Couldn't handle this token: %v", err)
}

func getClaim(raw, secretKey string) (model.StageClaims, *jwt.Token, error) {
	var claims model.StageClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	return claims, token, err
}
