package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isStockViolation detecta el rechazo por stock del backend: el trigger de la
// tienda lanza una excepción con el texto 'Stock insuficiente' y los checks de
// cantidad salen como 23514.
func isStockViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23514" { // check_violation
			return true
		}
		return strings.Contains(strings.ToLower(pgErr.Message), "stock insuficiente")
	}
	return strings.Contains(strings.ToLower(err.Error()), "stock insuficiente")
}
