package reconciler_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// fakeClient is an in-memory remote store with scriptable failures. Every
// call is appended to calls for order assertions.
type fakeClient struct {
	remote        map[envs.Environment]map[string]string
	fetchFailures map[envs.Environment]int
	listErr       map[envs.Environment]error
	addErr        map[string]error
	removeErr     map[string]error
	calls         []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		remote:        make(map[envs.Environment]map[string]string),
		fetchFailures: make(map[envs.Environment]int),
		listErr:       make(map[envs.Environment]error),
		addErr:        make(map[string]error),
		removeErr:     make(map[string]error),
	}
}

func (f *fakeClient) seed(environment envs.Environment, key, value string) {
	if f.remote[environment] == nil {
		f.remote[environment] = make(map[string]string)
	}
	f.remote[environment][key] = value
}

func (f *fakeClient) value(environment envs.Environment, key string) (string, bool) {
	v, ok := f.remote[environment][key]
	return v, ok
}

func (f *fakeClient) names(environment envs.Environment) []string {
	names := make([]string, 0, len(f.remote[environment]))
	for name := range f.remote[environment] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *fakeClient) countCalls(prefix string) int {
	n := 0
	for _, call := range f.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeClient) List(_ context.Context, environment envs.Environment) ([]string, error) {
	f.calls = append(f.calls, "list:"+environment.String())
	if err := f.listErr[environment]; err != nil {
		return nil, err
	}
	return f.names(environment), nil
}

func (f *fakeClient) FetchAll(_ context.Context, environment envs.Environment) (*envs.Mapping, error) {
	f.calls = append(f.calls, "fetch:"+environment.String())
	if f.fetchFailures[environment] > 0 {
		f.fetchFailures[environment]--
		return nil, errors.New("transport down")
	}

	mapping := envs.NewMapping()
	for _, name := range f.names(environment) {
		mapping.Set(name, envs.Known(f.remote[environment][name]))
	}
	return mapping, nil
}

func (f *fakeClient) Add(_ context.Context, key string, environment envs.Environment, value string) error {
	f.calls = append(f.calls, fmt.Sprintf("add:%s:%s", key, environment))
	if err := f.addErr[key]; err != nil {
		return err
	}
	if _, exists := f.remote[environment][key]; exists {
		return fmt.Errorf("adding %s: %w", key, errors.ErrAlreadyExists)
	}
	f.seed(environment, key, value)
	return nil
}

func (f *fakeClient) Remove(_ context.Context, key string, environment envs.Environment) error {
	f.calls = append(f.calls, fmt.Sprintf("remove:%s:%s", key, environment))
	if err := f.removeErr[key]; err != nil {
		return err
	}
	if _, exists := f.remote[environment][key]; !exists {
		return fmt.Errorf("removing %s: %w", key, errors.ErrNotFound)
	}
	delete(f.remote[environment], key)
	return nil
}

// fakePrompter replays scripted answers. An exhausted script cancels, so a
// test that prompts more than it scripted fails loudly instead of hanging.
type fakePrompter struct {
	confirms []bool
	selects  []int
	multis   [][]int

	confirmPrompts []string
	selectPrompts  []string
	multiPrompts   []string
}

func (p *fakePrompter) Confirm(_ context.Context, question string) (bool, error) {
	p.confirmPrompts = append(p.confirmPrompts, question)
	if len(p.confirms) == 0 {
		return false, errors.ErrCanceled
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *fakePrompter) Select(_ context.Context, title string, _ []string) (int, error) {
	p.selectPrompts = append(p.selectPrompts, title)
	if len(p.selects) == 0 {
		return 0, errors.ErrCanceled
	}
	choice := p.selects[0]
	p.selects = p.selects[1:]
	return choice, nil
}

func (p *fakePrompter) MultiSelect(_ context.Context, title string, _ []string) ([]int, error) {
	p.multiPrompts = append(p.multiPrompts, title)
	if len(p.multis) == 0 {
		return nil, errors.ErrCanceled
	}
	choice := p.multis[0]
	p.multis = p.multis[1:]
	return choice, nil
}
