package apperrors

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a uniqueness-index conflict,
// regardless of driver. GORM translates these to ErrDuplicatedKey when
// TranslateError is on; the pgconn check catches raw Postgres errors.
func IsUniqueViolation(err error) bool {
	if Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Translate normalizes data-layer and token-layer faults into the
// application taxonomy. Anything already an *AppError passes through;
// anything unrecognized becomes an InternalError. This is the single
// place such mappings live.
func Translate(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	switch {
	case Is(err, gorm.ErrRecordNotFound):
		return Wrap(err, CodeNotFound, "resource", "Resource not found", 404)
	case IsUniqueViolation(err):
		return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", 409)
	case Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case Is(err, jwt.ErrTokenMalformed),
		Is(err, jwt.ErrSignatureInvalid),
		Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidToken
	}

	return InternalError(err)
}
