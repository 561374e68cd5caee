package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/media"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/store"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/service"
)

// In-memory fakes for the store interfaces so handler tests run without a
// database.

type fakeAdminStore struct {
	admins map[string]*models.Admin
	nextID int64
}

func (f *fakeAdminStore) Create(_ context.Context, username, passwordHash, email string) (int64, error) {
	for _, a := range f.admins {
		if a.Username == username || a.Email == email {
			return 0, store.ErrDuplicate
		}
	}
	f.nextID++
	f.admins[username] = &models.Admin{ID: f.nextID, Username: username, Password: passwordHash, Email: email, CreatedAt: time.Now()}
	return f.nextID, nil
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	return f.admins[username], nil
}

func (f *fakeAdminStore) Exists(_ context.Context, username, email string) (bool, error) {
	for _, a := range f.admins {
		if a.Username == username || a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCardStore struct {
	cards  []models.Card
	nextID int64
}

func (f *fakeCardStore) Create(_ context.Context, card *models.Card) error {
	f.nextID++
	card.ID = f.nextID
	card.CreatedAt = time.Now()
	f.cards = append([]models.Card{*card}, f.cards...)
	return nil
}

func (f *fakeCardStore) List(_ context.Context) ([]models.Card, error) { return f.cards, nil }

func (f *fakeCardStore) Search(_ context.Context, term string) ([]models.Card, error) {
	term = strings.ToLower(term)
	matches := []models.Card{}
	for _, c := range f.cards {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.EmployeeID), term) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (f *fakeCardStore) GetByID(_ context.Context, id int64) (*models.Card, error) {
	for _, c := range f.cards {
		if c.ID == id {
			card := c
			return &card, nil
		}
	}
	return nil, nil
}

func (f *fakeCardStore) Delete(_ context.Context, id int64) (bool, error) {
	for i, c := range f.cards {
		if c.ID == id {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCardStore) Count(_ context.Context) (int64, error) { return int64(len(f.cards)), nil }

type fakeMessageStore struct {
	messages []models.Message
	nextID   int64
}

func (f *fakeMessageStore) Create(_ context.Context, msg *models.Message) error {
	f.nextID++
	msg.ID = f.nextID
	msg.CreatedAt = time.Now()
	f.messages = append([]models.Message{*msg}, f.messages...)
	return nil
}

func (f *fakeMessageStore) List(_ context.Context) ([]models.Message, error) { return f.messages, nil }

func (f *fakeMessageStore) GetByID(_ context.Context, id int64) (*models.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			msg := m
			return &msg, nil
		}
	}
	return nil, nil
}

func (f *fakeMessageStore) Delete(_ context.Context, id int64) (bool, error) {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeUpdateStore struct {
	updates []models.Update
	nextID  int64
}

func (f *fakeUpdateStore) Create(_ context.Context, upd *models.Update) error {
	f.nextID++
	upd.ID = f.nextID
	upd.CreatedAt = time.Now()
	f.updates = append([]models.Update{*upd}, f.updates...)
	return nil
}

func (f *fakeUpdateStore) List(_ context.Context) ([]models.Update, error) { return f.updates, nil }

func (f *fakeUpdateStore) Delete(_ context.Context, id int64) (bool, error) {
	for i, u := range f.updates {
		if u.ID == id {
			f.updates = append(f.updates[:i], f.updates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type testEnv struct {
	router    *chi.Mux
	tokenAuth *jwtauth.JWTAuth
	admins    *fakeAdminStore
	cards     *fakeCardStore
	messages  *fakeMessageStore
	updates   *fakeUpdateStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mediaStore, err := media.NewStore(t.TempDir(), "http://localhost:5000")
	require.NoError(t, err)

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)

	env := &testEnv{
		tokenAuth: tokenAuth,
		admins:    &fakeAdminStore{admins: map[string]*models.Admin{}},
		cards:     &fakeCardStore{},
		messages:  &fakeMessageStore{},
		updates:   &fakeUpdateStore{},
	}

	h := NewHandler(
		tokenAuth,
		service.NewAuthService(env.admins, tokenAuth, "root", "root-pass"),
		service.NewCardService(env.cards, mediaStore),
		service.NewMessageService(env.messages, mediaStore),
		service.NewUpdateService(env.updates),
		mediaStore,
	)

	env.router = chi.NewRouter()
	h.SetRoutes(env.router)

	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) adminToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	_, tokenString, err := e.tokenAuth.Encode(map[string]interface{}{
		"username": "root",
		"role":     "superadmin",
		"exp":      time.Now().Add(ttl).Unix(),
	})
	require.NoError(t, err)
	return tokenString
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func seedAdmin(t *testing.T, admins *fakeAdminStore, username, password, email string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = admins.Create(context.Background(), username, string(hash), email)
	require.NoError(t, err)
}

// multipartRequest builds a multipart form request with string fields and
// an optional file part.
func multipartRequest(t *testing.T, target string, fields map[string]string, fileField, fileName string, fileContent []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, body io.Reader, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}
