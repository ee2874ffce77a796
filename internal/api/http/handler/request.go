package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/staffhub-server/internal/model"
)

const maxJSONBytes = 1 << 20

// decodeJSON reads a single JSON value from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return model.NewRequestError("request body is empty")
	}
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return model.NewRequestError("request body is empty")
		}
		return model.NewRequestError("request body is not valid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.NewRequestError("request body must contain a single JSON object")
	}
	return nil
}

// pathID parses the {id} path value. Malformed ids are reported as ErrNotFound
// since no entity can have them.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}
