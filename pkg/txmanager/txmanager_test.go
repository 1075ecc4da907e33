package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowtress/booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (t *fakeTx) Commit() error   { t.committed = true; return t.commitErr }
func (t *fakeTx) Rollback() error { t.rolledBack = true; return nil }

// fakeBeginner hands out transactions whose commits fail with the queued
// errors, one per BeginTx call.
type fakeBeginner struct {
	commitErrs []error
	txs        []*fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if len(b.txs) < len(b.commitErrs) {
		commitErr = b.commitErrs[len(b.txs)]
	}
	tx := &fakeTx{commitErr: commitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationAbort() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access"}
}

func TestDoSerializable_CarriesExecutor(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(txCtx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(txCtx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
}

func TestDoSerializable_RetriesCommitAbort(t *testing.T) {
	db := &fakeBeginner{commitErrs: []error{serializationAbort(), nil}}
	m := NewTransactionManager(db)

	var fnCalls int
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		fnCalls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, fnCalls)
	assert.Len(t, db.txs, 2)
}

func TestDoSerializable_ExhaustsRetries(t *testing.T) {
	db := &fakeBeginner{commitErrs: []error{
		serializationAbort(), serializationAbort(), serializationAbort(),
	}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrSerializationFailure)
	assert.Len(t, db.txs, maxSerializableAttempts)
}

func TestDoSerializable_FnErrorNoRetry(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	sentinel := errors.New("slot gone")
	err := m.DoSerializable(context.Background(), func(context.Context) error { return sentinel })

	assert.ErrorIs(t, err, sentinel)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestDoSerializable_OtherCommitErrorNoRetry(t *testing.T) {
	db := &fakeBeginner{commitErrs: []error{errors.New("connection reset")}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSerializationFailure)
	assert.Len(t, db.txs, 1)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(serializationAbort()))
	assert.True(t, IsSerializationFailure(errors.Join(errors.New("commit"), serializationAbort())))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("plain")))
	assert.False(t, IsSerializationFailure(nil))
}
