package graph

import (
	"context"
	"errors"
	"fmt"

	"pedidos-be/internal/apperr"
	"pedidos-be/internal/logger"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"
)

const internalMessage = "internal server error"

// ErrorPresenter exposes the error code under extensions.code. Internal
// failures are logged and reported with a generic message.
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)

	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Code != apperr.CodeInternal {
		gqlErr.Message = appErr.Message
		gqlErr.Extensions = extensions(appErr.Code, appErr.Meta)
		return gqlErr
	}

	// gqlgen wraps every resolver error in a *gqlerror.Error carrying the
	// cause; only errors without a cause were raised by gqlgen itself.
	var coerced *gqlerror.Error
	if appErr == nil && errors.As(err, &coerced) && coerced.Err == nil {
		if gqlErr.Extensions == nil {
			gqlErr.Extensions = extensions(apperr.CodeInvalidInput, nil)
		}
		return gqlErr
	}

	logger.FromCtx(ctx).Error("resolver failed",
		zap.String("path", gqlErr.Path.String()),
		zap.Error(err),
	)
	gqlErr.Message = internalMessage
	gqlErr.Extensions = extensions(apperr.CodeInternal, nil)
	return gqlErr
}

// RecoverFunc turns a resolver panic into an internal error.
func RecoverFunc(ctx context.Context, p interface{}) error {
	logger.FromCtx(ctx).Error("resolver panic", zap.String("panic", fmt.Sprint(p)), zap.Stack("stack"))
	return apperr.Internal("panic", fmt.Errorf("%v", p))
}

func extensions(code apperr.Code, meta map[string]any) map[string]interface{} {
	ext := map[string]interface{}{"code": string(code)}
	for k, v := range meta {
		ext[k] = v
	}
	return ext
}
