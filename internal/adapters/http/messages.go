package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/hashicorp/go-multierror"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"backstage/internal/domain"
)

const (
	msgNotFound        = "record not found"
	msgLicenseNotFound = "license not found"
	msgWorkNotFound    = "work not found"
	msgConflict        = "an exclusive license is already active for this work, territory and media type"
	msgInvalid         = "invalid request: %s"
	msgForbidden       = "your role does not allow this operation"
	msgUnauthorized    = "missing or invalid credentials"
	msgUnavailable     = "the record store is unavailable, try again later"
	msgInternal        = "internal error"
)

// notFound maps NotFoundError.Entity to its catalog key.
var notFound = map[string]string{
	"license": msgLicenseNotFound,
	"work":    msgWorkNotFound,
}

var supported = []language.Tag{language.English, language.BrazilianPortuguese}

var (
	matcher  = language.NewMatcher(supported)
	messages = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	pt := language.BrazilianPortuguese
	set := func(key, en, ptBR string) {
		_ = b.SetString(language.English, key, en)
		_ = b.SetString(pt, key, ptBR)
	}
	set(msgNotFound, msgNotFound, "registro não encontrado")
	set(msgLicenseNotFound, msgLicenseNotFound, "licença não encontrada")
	set(msgWorkNotFound, msgWorkNotFound, "obra não encontrada")
	set(msgConflict, msgConflict, "já existe uma licença exclusiva ativa para esta obra, território e mídia")
	set(msgInvalid, "invalid request: %s", "requisição inválida: %s")
	set(msgForbidden, msgForbidden, "seu perfil não permite esta operação")
	set(msgUnauthorized, msgUnauthorized, "credenciais ausentes ou inválidas")
	set(msgUnavailable, msgUnavailable, "o banco de dados está indisponível, tente novamente mais tarde")
	set(msgInternal, msgInternal, "erro interno")
	return b
}

// printerFor returns a printer in the language chosen by Localize.
func printerFor(ctx context.Context) *message.Printer {
	tag, ok := ctx.Value(langKey{}).(language.Tag)
	if !ok {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(messages))
}

// describe maps err to its HTTP status and a localized message.
func describe(ctx context.Context, err error) (int, string) {
	p := printerFor(ctx)
	var (
		nf *domain.NotFoundError
		cf *domain.ConflictError
		ve *domain.ValidationError
		se *domain.StorageError
	)
	switch {
	case errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized, p.Sprintf(msgUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, p.Sprintf(msgForbidden)
	case errors.As(err, &nf):
		key, ok := notFound[nf.Entity]
		if !ok {
			key = msgNotFound
		}
		return http.StatusNotFound, p.Sprintf(key)
	case errors.As(err, &cf):
		return http.StatusConflict, p.Sprintf(msgConflict)
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, p.Sprintf(msgInvalid, problems(ve))
	case errors.As(err, &se):
		return http.StatusServiceUnavailable, p.Sprintf(msgUnavailable)
	default:
		return http.StatusInternalServerError, p.Sprintf(msgInternal)
	}
}

func problems(ve *domain.ValidationError) string {
	if ve.Problems == nil {
		return "invalid input"
	}
	var merr *multierror.Error
	if errors.As(ve.Problems, &merr) {
		parts := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			parts = append(parts, e.Error())
		}
		return strings.Join(parts, "; ")
	}
	return ve.Problems.Error()
}
