package root

import (
	"context"

	"github.com/flowsyncsolutions/pixelpress/internal/engine"
	"github.com/flowsyncsolutions/pixelpress/internal/storage"
)

func openStore(ctx context.Context) (*storage.SQLiteStore, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	st, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
	}
	return st, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	st, cleanup, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(st), cleanup, nil
}
