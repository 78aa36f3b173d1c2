package users

import (
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	msgEmailInUse     = "Este correo electrónico ya está registrado."
	msgInvalidEmail   = "El correo electrónico no es válido."
	msgWeakPassword   = "La contraseña debe tener al menos 6 caracteres."
	msgWrongPassword  = "Contraseña incorrecta."
	msgUserNotFound   = "No existe ningún usuario con ese correo electrónico."
	msgAthleteMissing = "El atleta no existe."
	msgInvalidName    = "El nombre es obligatorio."
	msgInvalidProfile = "Los datos del perfil no son válidos."
)

// WriteError maps the users errors (and the shared auth errors every domain
// reuses) to the failure envelope. Anything unknown is logged and answered with 500.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
	case errors.Is(err, ErrForbidden):
		pkg.WriteError(w, http.StatusForbidden, pkg.MsgForbidden)
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteError(w, http.StatusNotFound, msgAthleteMissing)
	case errors.Is(err, ErrEmailInUse):
		pkg.WriteError(w, http.StatusConflict, msgEmailInUse)
	case errors.Is(err, ErrInvalidEmail):
		pkg.WriteError(w, http.StatusBadRequest, msgInvalidEmail)
	case errors.Is(err, ErrWeakPassword):
		pkg.WriteError(w, http.StatusBadRequest, msgWeakPassword)
	case errors.Is(err, ErrInvalidName):
		pkg.WriteError(w, http.StatusBadRequest, msgInvalidName)
	case errors.Is(err, ErrInvalidProfile):
		pkg.WriteError(w, http.StatusBadRequest, msgInvalidProfile)
	default:
		log.Errorf("unexpected error: %s", err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.MsgInternal)
	}
}

// WriteAuthError answers failed logins. Unknown users and wrong passwords
// have their own messages, same as the sign in form always had.
func WriteAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteError(w, http.StatusUnauthorized, msgUserNotFound)
	case errors.Is(err, ErrWrongPassword):
		pkg.WriteError(w, http.StatusUnauthorized, msgWrongPassword)
	default:
		WriteError(w, err)
	}
}
