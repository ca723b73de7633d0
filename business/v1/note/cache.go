package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// The cache holds the bare note row only; categories are hydrated from the
// store on every read, so a category rename or delete is visible immediately.
// Cache failures never fail the request; they are logged and the store answers.

func cachedNote(ctx context.Context, r *sys.Resources, id uint64) (note.Note, bool) {
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, r.Configs.Cache.OperationTimeout)
	defer tcCancel()

	get, err := r.Cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		r.Log.Error("failure to get note ", id, " from cache: ", err.Error())
	}
	if get == "" {
		return note.Note{}, false
	}

	var row note.Note
	if err := json.Unmarshal([]byte(get), &row); err != nil {
		r.Log.Errorf("error parsing cached response for key %s: %s", key, err)
		return note.Note{}, false
	}

	return row, true
}

func cacheNote(ctx context.Context, r *sys.Resources, row note.Note) {
	key := fmt.Sprintf(noteKey, row.Id)

	data, err := json.Marshal(row)
	if err != nil {
		r.Log.Errorf("error marshaling note for key %s: %s", key, err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, r.Configs.Cache.OperationTimeout)
	defer tcCancel()

	if err := r.Cache.Set(tcCtx, key, string(data), r.Configs.Cache.CacheTTL).Err(); err != nil {
		r.Log.Error("failure to set note ", row.Id, " into cache: ", err.Error())
	}
}

func evictNote(ctx context.Context, r *sys.Resources, id uint64) {
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, r.Configs.Cache.OperationTimeout)
	defer tcCancel()

	if err := r.Cache.Del(tcCtx, key).Err(); err != nil {
		r.Log.Error("failure to evict note ", id, " from cache: ", err.Error())
	}
}
