package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanFunc implementa pgx.Row con una función de Scan guionada.
type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

// scriptQuerier devuelve respuestas guionadas en orden y registra cada
// sentencia SQL que el repositorio ejecuta, para verificar la secuencia.
type scriptQuerier struct {
	t    *testing.T
	rows []scanFunc
	sql  []string
}

func (q *scriptQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.sql = append(q.sql, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *scriptQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.t.Fatalf("Query inesperado: %s", sql)
	return nil, nil
}

func (q *scriptQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sql = append(q.sql, sql)
	require.NotEmpty(q.t, q.rows, "QueryRow sin respuesta guionada: %s", sql)
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

func filaDeStock(holderID, eggTypeID string, good, cracked, spoiled int64) scanFunc {
	return func(dest ...any) error {
		*dest[0].(*string) = holderID
		*dest[1].(*string) = eggTypeID
		*dest[2].(*int64) = good
		*dest[3].(*int64) = cracked
		*dest[4].(*int64) = spoiled
		*dest[5].(*time.Time) = time.Now()
		return nil
	}
}

func sinFila() scanFunc {
	return func(_ ...any) error { return pgx.ErrNoRows }
}

// Si el bucket aún no existe, GetForUpdate debe materializar la fila en cero
// (INSERT ... DO NOTHING) y volver a seleccionar con FOR UPDATE. Sin ese paso
// el FOR UPDATE no bloquea nada y dos creaciones concurrentes del mismo
// bucket se pisarían la una a la otra.
func TestGetForUpdate_BucketInexistenteMaterializaYRebloquea(t *testing.T) {
	q := &scriptQuerier{t: t, rows: []scanFunc{
		sinFila(),
		filaDeStock("bodega", "jumbo", 0, 0, 0),
	}}
	repo := NewStockRepository(q)

	s, err := repo.GetForUpdate(context.Background(), "bodega", "jumbo")
	require.NoError(t, err)
	assert.Equal(t, "bodega", s.HolderID)
	assert.Equal(t, "jumbo", s.EggTypeID)
	assert.Zero(t, s.GoodEggs)

	require.Len(t, q.sql, 3)
	assert.Contains(t, q.sql[0], "FOR UPDATE")
	assert.Contains(t, q.sql[1], "ON CONFLICT (holder_id, egg_type_id) DO NOTHING")
	assert.Contains(t, q.sql[2], "FOR UPDATE")
	assert.Equal(t, q.sql[0], q.sql[2], "el re-SELECT usa la misma consulta con lock")
}

// Con el bucket ya materializado basta un solo SELECT FOR UPDATE.
func TestGetForUpdate_BucketExistenteNoInserta(t *testing.T) {
	q := &scriptQuerier{t: t, rows: []scanFunc{
		filaDeStock("bodega", "jumbo", 90, 3, 1),
	}}
	repo := NewStockRepository(q)

	s, err := repo.GetForUpdate(context.Background(), "bodega", "jumbo")
	require.NoError(t, err)
	assert.Equal(t, int64(90), s.GoodEggs)
	assert.Equal(t, int64(3), s.CrackedEggs)
	assert.Equal(t, int64(1), s.SpoiledEggs)

	require.Len(t, q.sql, 1)
	assert.True(t, strings.Contains(q.sql[0], "FOR UPDATE"))
	for _, stmt := range q.sql {
		assert.NotContains(t, stmt, "INSERT")
	}
}
