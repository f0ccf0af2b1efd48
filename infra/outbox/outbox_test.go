package outbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestPutNewAndGet(t *testing.T) {
	o := openTest(t)

	require.NoError(t, o.PutNew(1, []byte(`{"seq":1}`)))

	rec, err := o.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StateNew, rec.State)
	assert.Equal(t, uint32(0), rec.Retries)
	assert.Equal(t, []byte(`{"seq":1}`), rec.Payload)
}

func TestStateTransitions(t *testing.T) {
	o := openTest(t)
	require.NoError(t, o.PutNew(7, []byte("x")))

	require.NoError(t, o.MarkSent(7))
	rec, err := o.Get(7)
	require.NoError(t, err)
	assert.Equal(t, StateSent, rec.State)

	require.NoError(t, o.MarkFailed(7))
	rec, err = o.Get(7)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, rec.State)
	assert.Equal(t, uint32(1), rec.Retries)

	require.NoError(t, o.MarkAcked(7))
	_, err = o.Get(7)
	assert.Error(t, err, "acked records are deleted")
}

func TestScanPendingSkipsSent(t *testing.T) {
	o := openTest(t)
	require.NoError(t, o.PutNew(1, []byte("a")))
	require.NoError(t, o.PutNew(2, []byte("b")))
	require.NoError(t, o.PutNew(3, []byte("c")))
	require.NoError(t, o.MarkSent(2))
	require.NoError(t, o.MarkFailed(3))

	var seqs []uint64
	err := o.ScanPending(func(seq uint64, rec Record) error {
		seqs = append(seqs, seq)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, seqs, "sequence order, SENT skipped")
}

func TestScanPendingOrder(t *testing.T) {
	o := openTest(t)
	for _, seq := range []uint64{42, 7, 100000, 99} {
		require.NoError(t, o.PutNew(seq, []byte("p")))
	}

	var seqs []uint64
	require.NoError(t, o.ScanPending(func(seq uint64, rec Record) error {
		seqs = append(seqs, seq)
		return nil
	}))
	assert.Equal(t, []uint64{7, 42, 99, 100000}, seqs)
}
