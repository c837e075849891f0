//go:build js && wasm

package localstorage

import (
	"context"
	"fmt"
	"syscall/js"
)

// BrowserRepository stores values in window.localStorage. Values are kept
// as strings, so they must be valid UTF-8.
type BrowserRepository struct {
	store js.Value
}

func NewBrowserRepository() *BrowserRepository {
	return &BrowserRepository{store: js.Global().Get("localStorage")}
}

func (r *BrowserRepository) Get(_ context.Context, key string) (v []byte, err error) {
	defer recoverJS(&err, "get", key)
	item := r.store.Call("getItem", key)
	if item.IsNull() || item.IsUndefined() {
		return nil, nil
	}
	return []byte(item.String()), nil
}

func (r *BrowserRepository) Set(_ context.Context, key string, value []byte) (err error) {
	defer recoverJS(&err, "set", key)
	r.store.Call("setItem", key, string(value))
	return nil
}

func (r *BrowserRepository) Delete(_ context.Context, key string) (err error) {
	defer recoverJS(&err, "delete", key)
	r.store.Call("removeItem", key)
	return nil
}

func (r *BrowserRepository) Clear(_ context.Context) (err error) {
	defer recoverJS(&err, "clear", "*")
	r.store.Call("clear")
	return nil
}

func (r *BrowserRepository) List(_ context.Context) (out map[string][]byte, err error) {
	defer recoverJS(&err, "list", "*")
	n := r.store.Get("length").Int()
	out = make(map[string][]byte, n)
	for i := 0; i < n; i++ {
		key := r.store.Call("key", i).String()
		out[key] = []byte(r.store.Call("getItem", key).String())
	}
	return out, nil
}

// recoverJS turns an exception thrown by the storage API (quota exceeded,
// storage disabled) into an error.
func recoverJS(err *error, op, key string) {
	if p := recover(); p != nil {
		if jsErr, ok := p.(js.Error); ok {
			*err = fmt.Errorf("failed to %s localStorage[%s]: %w", op, key, jsErr)
			return
		}
		panic(p)
	}
}
