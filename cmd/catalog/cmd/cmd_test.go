package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"catalog/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer records requests and answers like the catalog server.
type fakeServer struct {
	mu      sync.Mutex
	created []api.CreateSchemeRequest
	paths   []string
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, r.Method+" "+r.URL.RequestURI())

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/schemes":
		date := "2024-05-06"
		json.NewEncoder(w).Encode([]api.Scheme{
			{Title: "Solar roofs", Description: "Panels", Category: "Category_1", PublishDate: &date},
			{Title: "Seed kits", Description: "Seeds", Category: "Category_2"},
		})
	case r.Method == http.MethodPost && r.URL.Path == "/api/schemes":
		var in api.CreateSchemeRequest
		json.NewDecoder(r.Body).Decode(&in)
		f.created = append(f.created, in)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.CreateSchemeResponse{Message: "Scheme added successfully", Category: "Uncategorized"})
	case r.Method == http.MethodPost && r.URL.Path == "/api/train-model":
		if len(f.created) < 2 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Need at least 2 schemes to train"})
			return
		}
		json.NewEncoder(w).Encode(api.TrainResponse{Message: "Model trained successfully on 2 schemes"})
	case r.Method == http.MethodGet && r.URL.Path == "/api/notifications":
		json.NewEncoder(w).Encode([]api.Notification{{ID: "n1", Title: "Solar roofs", Category: "Category_1"}})
	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(api.ErrorResponse{Error: "not found"})
	}
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		listCategory, outputFormat, seedTrain = "", "table", false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--url", srv.URL}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSchemesList(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	out, err := run(t, srv, "schemes", "list", "--category", "Category_1")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Solar roofs")
	assert.Contains(t, out, "2024-05-06")
	assert.Contains(t, out, "N/A")
	assert.Equal(t, []string{"GET /api/schemes?category=Category_1"}, fake.paths)
}

func TestSchemesListJSON(t *testing.T) {
	srv := httptest.NewServer(&fakeServer{})
	defer srv.Close()

	out, err := run(t, srv, "schemes", "list", "--format", "json")
	require.NoError(t, err)

	var got []api.Scheme
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
}

func TestSchemesAdd(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	out, err := run(t, srv, "schemes", "add", "Solar roofs", "Rooftop panels")
	require.NoError(t, err)
	assert.Equal(t, "Scheme added successfully! Category: Uncategorized\n", out)
	assert.Equal(t, []api.CreateSchemeRequest{{Title: "Solar roofs", Description: "Rooftop panels"}}, fake.created)
}

func TestTrainSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(&fakeServer{})
	defer srv.Close()

	out, err := run(t, srv, "train")
	require.EqualError(t, err, "Need at least 2 schemes to train")
	assert.Contains(t, out, "Error: Need at least 2 schemes to train")
}

func TestNotifications(t *testing.T) {
	srv := httptest.NewServer(&fakeServer{})
	defer srv.Close()

	out, err := run(t, srv, "notifications")
	require.NoError(t, err)
	assert.Contains(t, out, "1 notification(s)")
	assert.Contains(t, out, "Solar roofs")
}

func TestSeed(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "schemes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`schemes:
  - title: Solar roofs
    description: Rooftop panels
  - title: Seed kits
    description: Seeds for farmers
`), 0o644))

	out, err := run(t, srv, "seed", path, "--train")
	require.NoError(t, err)
	assert.Contains(t, out, "2 scheme(s) added")
	assert.Contains(t, out, "Model trained successfully on 2 schemes")
	require.Len(t, fake.created, 2)
	assert.Equal(t, "Seed kits", fake.created[1].Title)
}

func TestReadSeedFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := readSeedFile(write("empty.yaml", "schemes: []\n"))
	assert.EqualError(t, err, "seed file lists no schemes")

	_, err = readSeedFile(write("missing.yaml", "schemes:\n  - title: x\n"))
	assert.EqualError(t, err, "scheme 1: title and description are required")

	_, err = readSeedFile(write("bad.yaml", "schemes: [\n"))
	assert.ErrorContains(t, err, "parse ")

	schemes, err := readSeedFile(filepath.Join("..", "..", "..", "seed", "schemes.yaml"))
	require.NoError(t, err)
	assert.Len(t, schemes, 10)
}
