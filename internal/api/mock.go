package api

import (
	"context"
	"encoding/json"
	"sync"
)

// MockClient is a mock implementation of the Transport interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetFunc         func(resource Resource) RawResult
	GetByIDFunc     func(resource Resource, id int) RawResult
	GetByNameFunc   func(resource Resource, query string) RawResult
	PostFunc        func(resource Resource, body any) RawResult
	PutFunc         func(resource Resource, body any) RawResult
	DeleteFunc      func(resource Resource, id int) RawResult
	UploadImageFunc func(category Category, image Image) UploadResult

	// Call records
	GetCalls         []Resource
	GetByIDCalls     []int
	GetByNameCalls   []string
	PostCalls        []any
	PutCalls         []any
	DeleteCalls      []int
	UploadImageCalls []Category
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = nil
	m.GetByIDCalls = nil
	m.GetByNameCalls = nil
	m.PostCalls = nil
	m.PutCalls = nil
	m.DeleteCalls = nil
	m.UploadImageCalls = nil
}

func (m *MockClient) Get(ctx context.Context, resource Resource) RawResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, resource)
	if m.GetFunc != nil {
		return m.GetFunc(resource)
	}
	return JSONResult(200, []any{})
}

func (m *MockClient) GetByID(ctx context.Context, resource Resource, id int) RawResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(resource, id)
	}
	return RawResult{Outcome: OutcomeNotFound, StatusCode: 404}
}

func (m *MockClient) GetByName(ctx context.Context, resource Resource, query string) RawResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByNameCalls = append(m.GetByNameCalls, query)
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(resource, query)
	}
	return RawResult{Outcome: OutcomeNotFound, StatusCode: 404}
}

func (m *MockClient) Post(ctx context.Context, resource Resource, body any) RawResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PostCalls = append(m.PostCalls, body)
	if m.PostFunc != nil {
		return m.PostFunc(resource, body)
	}
	return RawResult{Outcome: OutcomeOK, StatusCode: 201}
}

func (m *MockClient) Put(ctx context.Context, resource Resource, body any) RawResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, body)
	if m.PutFunc != nil {
		return m.PutFunc(resource, body)
	}
	return RawResult{Outcome: OutcomeOK, StatusCode: 200}
}

func (m *MockClient) Delete(ctx context.Context, resource Resource, id int) RawResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(resource, id)
	}
	return RawResult{Outcome: OutcomeOK, StatusCode: 204}
}

func (m *MockClient) UploadImage(ctx context.Context, category Category, image Image) UploadResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UploadImageCalls = append(m.UploadImageCalls, category)
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(category, image)
	}
	return UploadResult{Success: true, FileName: "mock.png"}
}

// JSONResult builds a successful RawResult carrying v encoded as JSON.
func JSONResult(status int, v any) RawResult {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return RawResult{Outcome: OutcomeOK, StatusCode: status, Body: body}
}
