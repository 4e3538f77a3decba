package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyJWT CtxKey = iota
)

func CtxWithJWT(ctx context.Context, jwt string) context.Context {
	return context.WithValue(ctx, CtxKeyJWT, jwt)
}

// JWTFromCtx returns JWT from context or empty string if JWT is not found.
func JWTFromCtx(ctx context.Context) string {
	jwt, ok := ctx.Value(CtxKeyJWT).(string)
	if !ok {
		return ""
	}

	return jwt
}
