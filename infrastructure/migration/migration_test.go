package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embeddedMigrations, migrationsDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.Contains(t, names, "000001_create_anunciantes.up.sql")
	assert.Contains(t, names, "000002_create_financeiro_clube.up.sql")
	assert.Len(t, names, 4, "cada migração up precisa do down correspondente")
}

func TestFinanceiroClubeHasUniqueMonthConstraint(t *testing.T) {
	content, err := fs.ReadFile(embeddedMigrations, migrationsDir+"/000002_create_financeiro_clube.up.sql")
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(content), "UNIQUE (anunciante_id, mes_referencia)"))
}

func TestRunMigrations_SemConexao(t *testing.T) {
	assert.Error(t, RunMigrations(nil))
}
