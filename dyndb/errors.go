package dyndb

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrTableNotFound – a tabela não existe ou não é acessível
	ErrTableNotFound = errors.New("dyndb: table not found")

	// ErrNoKeySchema – DescribeTable não retornou key schema
	ErrNoKeySchema = errors.New("dyndb: table has no key schema")
)

const resourceNotFoundCode = "ResourceNotFoundException"

// IsTableNotFound reconhece tanto o sentinel do pacote quanto o erro do
// serviço, pelo tipo ou pelo código da API (nunca pela mensagem).
func IsTableNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTableNotFound) {
		return true
	}
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == resourceNotFoundCode
}

// tableErr padroniza o wrap de falhas de describe/scan, anexando
// ErrTableNotFound quando for o caso.
func tableErr(op string, err error) error {
	if IsTableNotFound(err) && !errors.Is(err, ErrTableNotFound) {
		return fmt.Errorf("dyndb: %s failed: %w: %w", op, ErrTableNotFound, err)
	}
	return fmt.Errorf("dyndb: %s failed: %w", op, err)
}
