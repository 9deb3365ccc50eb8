package service

import (
	"context"
	"errors"
	"sync"

	"soulful-home-be/internal/entity"
	"soulful-home-be/pkg/docstore"
	"soulful-home-be/pkg/embedding"
	"soulful-home-be/pkg/events"
	"soulful-home-be/pkg/llm"
)

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
	options llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	f.options = llm.Options{}
	for _, o := range options {
		o(&f.options)
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type fakePersona struct {
	reports *entity.UserReports
	err     error
	calls   int
	log     entity.ConversationLog
}

func (f *fakePersona) Generate(ctx context.Context, log entity.ConversationLog, selections entity.SelectionSet) (*entity.UserReports, error) {
	f.calls++
	f.log = log
	return f.reports, f.err
}

type fakeMatcher struct {
	results *entity.SearchResults
	err     error
}

func (f *fakeMatcher) Match(ctx context.Context, reports entity.UserReports) (*entity.SearchResults, error) {
	return f.results, f.err
}

type fakeEmbedder struct {
	mu    sync.Mutex
	err   error
	texts []string
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{1, 0}}}, nil
}

var errDiskFull = errors.New("disk full")

// unwritableStore reads like a MemoryStore but rejects every write.
type unwritableStore struct {
	*docstore.MemoryStore
}

func (s unwritableStore) Put(ctx context.Context, key string, body []byte) error {
	return errDiskFull
}

func (s unwritableStore) Update(ctx context.Context, key string, fn docstore.UpdateFunc) error {
	return errDiskFull
}
