package catalog

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"novelnook/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers exposes the catalog over HTTP.
type Handlers struct {
	store Store
}

func NewHandlers(store Store) *Handlers {
	return &Handlers{store: store}
}

// GetBooks lists the catalog, with optional ?category=, ?search=,
// ?featured=true, ?sort=price|rating|title and ?order=desc.
func (h *Handlers) GetBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	qs := r.URL.Query()
	q := Query{
		Category: qs.Get("category"),
		Search:   qs.Get("search"),
		Featured: qs.Get("featured") == "true",
		SortBy:   qs.Get("sort"),
		Desc:     qs.Get("order") == "desc",
	}

	switch q.SortBy {
	case "", "price", "rating", "title":
	default:
		http.Error(w, "Invalid sort field", http.StatusBadRequest)
		return
	}

	books, err := h.store.List(ctx, q)
	if err != nil {
		log.Println("GetBooks error:", err)
		http.Error(w, "Could not load catalog", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, books)
}

// GetBook returns a single book by id.
func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	book, err := h.store.FindByID(ctx, ps.ByName("bookid"))
	if errors.Is(err, ErrBookNotFound) {
		http.Error(w, "Book not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("GetBook error:", err)
		http.Error(w, "Could not load book", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, book)
}

// GetCategories returns the category list for the storefront nav.
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories)
}
