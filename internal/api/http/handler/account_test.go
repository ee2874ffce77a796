package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/staffhub-server/internal/api/http/context"
	"github.com/dtroode/staffhub-server/internal/mocks"
	"github.com/dtroode/staffhub-server/internal/model"
	"github.com/dtroode/staffhub-server/internal/testutil"
)

func strPtr(s string) *string { return &s }

func withClaims(r *http.Request, userID uuid.UUID) *http.Request {
	cm := apicontext.NewManager()
	return r.WithContext(cm.SetClaimsToContext(r.Context(), model.Claims{UserID: userID, Email: "ann@example.com"}))
}

type multipartField struct {
	name, value string
}

func multipartBody(t *testing.T, fields []multipartField, fileName, fileType string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, mw.WriteField(f.name, f.value))
	}
	if fileName != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="picture"; filename="`+fileName+`"`)
		hdr.Set("Content-Type", fileType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAccount_GetAccount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns account", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAccountService(t)
		svc.On("GetAccount", mock.Anything, userID).Return(model.Identity{
			ID:         userID,
			Email:      "ann@example.com",
			Name:       strPtr("Ann"),
			PictureRef: strPtr("/uploads/pictures/a.png"),
		}, nil)
		h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.GetAccount(rec, withClaims(httptest.NewRequest(http.MethodGet, "/account", nil), userID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"ann@example.com","name":"Ann","picture":"/uploads/pictures/a.png"}`, rec.Body.String())
	})

	t.Run("identity deleted after token issue", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAccountService(t)
		svc.On("GetAccount", mock.Anything, userID).Return(model.Identity{}, model.ErrNotFound)
		h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.GetAccount(rec, withClaims(httptest.NewRequest(http.MethodGet, "/account", nil), userID))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		t.Parallel()

		h := NewAccount(mocks.NewAccountService(t), apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.GetAccount(rec, httptest.NewRequest(http.MethodGet, "/account", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAccount_UpdateAccount_Multipart(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	picture := []byte("\x89PNG fake image")

	svc := mocks.NewAccountService(t)
	svc.On("UpdateAccount", mock.Anything, userID, mock.MatchedBy(func(u model.AccountUpdate) bool {
		if u.Name != "Ann B" || u.Email != "annb@example.com" || u.Picture == nil {
			return false
		}
		data, err := io.ReadAll(u.Picture.Reader)
		return err == nil &&
			bytes.Equal(data, picture) &&
			u.Picture.Filename == "me.PNG" &&
			u.Picture.ContentType == "image/png" &&
			u.Picture.Size == int64(len(picture))
	})).Return(model.Identity{
		ID:         userID,
		Email:      "annb@example.com",
		Name:       strPtr("Ann B"),
		PictureRef: strPtr("/uploads/pictures/x.png"),
	}, nil)

	h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

	body, contentType := multipartBody(t, []multipartField{{"name", "Ann B"}, {"email", "annb@example.com"}}, "me.PNG", "image/png", picture)
	req := httptest.NewRequest(http.MethodPost, "/account/update", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.UpdateAccount(rec, withClaims(req, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"account updated","email":"annb@example.com","name":"Ann B","picture":"/uploads/pictures/x.png"}`, rec.Body.String())
}

func TestAccount_UpdateAccount_URLEncodedWithoutPicture(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := mocks.NewAccountService(t)
	svc.On("UpdateAccount", mock.Anything, userID, model.AccountUpdate{Name: "Ann"}).
		Return(model.Identity{ID: userID, Email: "ann@example.com", Name: strPtr("Ann")}, nil)

	h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/account/update", strings.NewReader("name=Ann"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.UpdateAccount(rec, withClaims(req, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"account updated","email":"ann@example.com","name":"Ann","picture":null}`, rec.Body.String())
}

func TestAccount_UpdateAccount_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := mocks.NewAccountService(t)
	svc.On("UpdateAccount", mock.Anything, userID, model.AccountUpdate{Email: "taken@example.com"}).
		Return(model.Identity{}, model.ErrDuplicateIdentity)

	h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

	body, contentType := multipartBody(t, []multipartField{{"email", "taken@example.com"}}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/account/update", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.UpdateAccount(rec, withClaims(req, userID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"email is already registered"}`, rec.Body.String())
}

func TestAccount_UpdateAccount_TooLarge(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	h := NewAccount(mocks.NewAccountService(t), apicontext.NewManager(), 64, testutil.MakeNoopLogger())

	body, contentType := multipartBody(t, nil, "big.png", "image/png", bytes.Repeat([]byte("x"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/account/update", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.UpdateAccount(rec, withClaims(req, userID))

	assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
	assert.Less(t, rec.Code, http.StatusInternalServerError)
}

func TestAccount_Picture(t *testing.T) {
	t.Parallel()

	t.Run("streams object", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAccountService(t)
		svc.On("OpenPicture", mock.Anything, "pictures/a.png").
			Return(io.NopCloser(strings.NewReader("png-bytes")), model.ObjectInfo{Size: 9, ContentType: "image/png"}, nil)
		h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/uploads/pictures/a.png", nil)
		req.SetPathValue("key", "pictures/a.png")
		rec := httptest.NewRecorder()
		h.Picture(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "9", rec.Header().Get("Content-Length"))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAccountService(t)
		svc.On("OpenPicture", mock.Anything, "pictures/none.png").Return(nil, model.ObjectInfo{}, model.ErrNotFound)
		h := NewAccount(svc, apicontext.NewManager(), 1<<20, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/uploads/pictures/none.png", nil)
		req.SetPathValue("key", "pictures/none.png")
		rec := httptest.NewRecorder()
		h.Picture(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
