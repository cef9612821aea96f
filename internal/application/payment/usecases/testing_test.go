package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seralkhatem3210/urway/internal/application/payment/urway"
	"github.com/seralkhatem3210/urway/internal/domain/payment"
	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
	"github.com/seralkhatem3210/urway/internal/shared/errors"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
)

// fakeTransactionRepository is an in-memory TransactionRepository keyed by
// an auto-incremented id. It intentionally allows multiple transactions
// per reference so multiplicity handling can be exercised.
type fakeTransactionRepository struct {
	mu           sync.Mutex
	nextID       uint
	transactions map[uint]*payment.Transaction
	createCalls  int
	updateCalls  int
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		nextID:       1,
		transactions: make(map[uint]*payment.Transaction),
	}
}

func (r *fakeTransactionRepository) Create(_ context.Context, tx *payment.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.SetID(r.nextID)
	r.transactions[r.nextID] = tx
	r.nextID++
	r.createCalls++
	return nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, tx *payment.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[tx.ID()]; !ok {
		return errors.NewNotFoundError(fmt.Sprintf("transaction %d not found", tx.ID()))
	}
	r.transactions[tx.ID()] = tx
	r.updateCalls++
	return nil
}

func (r *fakeTransactionRepository) GetByID(_ context.Context, id uint) (*payment.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("transaction %d not found", id))
	}
	return tx, nil
}

func (r *fakeTransactionRepository) GetByReference(_ context.Context, reference string) (*payment.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range r.transactions {
		if tx.Reference() == reference {
			return tx, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("no transaction found for reference %s", reference))
}

func (r *fakeTransactionRepository) FindAllByReference(_ context.Context, reference string) ([]*payment.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*payment.Transaction
	for id := uint(1); id < r.nextID; id++ {
		if tx, ok := r.transactions[id]; ok && tx.Reference() == reference {
			matches = append(matches, tx)
		}
	}
	return matches, nil
}

func (r *fakeTransactionRepository) seed(t *testing.T, reference string, state vo.TransactionState) *payment.Transaction {
	t.Helper()
	tx, err := payment.NewTransaction(reference, vo.NewMoney(10000, "SAR"), vo.Customer{Email: "payer@example.com", Language: "en"})
	require.NoError(t, err)
	switch state {
	case vo.StateDraft:
	case vo.StatePending:
		require.NoError(t, tx.MarkPending())
	case vo.StateDone:
		require.True(t, tx.ApplyOutcome("PRIOR", true, ""))
	case vo.StateError:
		require.True(t, tx.ApplyOutcome("PRIOR", false, "prior failure"))
	}
	require.NoError(t, r.Create(context.Background(), tx))
	return tx
}

var _ payment.TransactionRepository = (*fakeTransactionRepository)(nil)

// gatewayHarness is a fake gateway endpoint. It records every request and
// replies with the configured response for each action code.
type gatewayHarness struct {
	mu        sync.Mutex
	requests  []map[string]string
	responses map[string]urway.Response
	server    *httptest.Server
}

func newGatewayHarness(t *testing.T) *gatewayHarness {
	t.Helper()
	h := &gatewayHarness{responses: make(map[string]urway.Response)}
	h.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		h.mu.Lock()
		h.requests = append(h.requests, payload)
		resp := h.responses[payload["action"]]
		h.mu.Unlock()

		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(h.server.Close)
	return h
}

func (h *gatewayHarness) respondTo(action string, resp urway.Response) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses[action] = resp
}

func (h *gatewayHarness) callCount(action string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, req := range h.requests {
		if req["action"] == action {
			n++
		}
	}
	return n
}

func (h *gatewayHarness) lastRequest(t *testing.T) map[string]string {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.requests)
	return h.requests[len(h.requests)-1]
}

func (h *gatewayHarness) client(t *testing.T) *urway.Client {
	t.Helper()
	client, err := urway.NewClient(urway.Credentials{
		MerchantKey: "M1",
		TerminalID:  "T1",
		Password:    "P1",
		RequestURL:  h.server.URL,
	}, logger.NewLogger())
	require.NoError(t, err)
	return client
}
