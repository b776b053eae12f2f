package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/parser"
)

func TestExtractSignature(t *testing.T) {
	node, err := parser.ParseType("(string, number) => string")
	require.NoError(t, err)

	params, ret, err := ExtractSignature(node)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "string", ast.TypeString(params[0]))
	assert.Equal(t, "number", ast.TypeString(params[1]))
	assert.Equal(t, "string", ast.TypeString(ret))
}

func TestExtractSignatureNiladic(t *testing.T) {
	node, err := parser.ParseType("() => void")
	require.NoError(t, err)

	params, ret, err := ExtractSignature(node)
	require.NoError(t, err)
	assert.Empty(t, params)
	assert.IsType(t, &ast.Void{}, ret)
}

func TestExtractSignatureRejectsNonFunctions(t *testing.T) {
	for _, expr := range []string{"number", "number[]", "{ f: (a) => b }"} {
		node, err := parser.ParseType(expr)
		require.NoError(t, err)

		_, _, err = ExtractSignature(node)
		require.Error(t, err, expr)
		var sigErr tyerr.NewNotASignature
		require.ErrorAs(t, err, &sigErr)
		assert.Equal(t, tyerr.DefinitionError, tyerr.CategoryOf(err))
	}
}
