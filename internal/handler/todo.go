package handler

import (
	"embed"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-web/internal/model"
	"github.com/BuzzLyutic/todo-web/internal/repo"
	"github.com/BuzzLyutic/todo-web/internal/service"
	"github.com/BuzzLyutic/todo-web/pkg/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRenderer parses the embedded page templates.
func NewRenderer() (*render.Renderer, error) {
	return render.New(templatesFS, "templates/*.html")
}

type TodoHandler struct {
	service *service.TodoService
	render  *render.Renderer
	logger  *zap.Logger
}

func NewTodoHandler(srv *service.TodoService, rd *render.Renderer, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: srv,
		render:  rd,
		logger:  logger,
	}
}

type listView struct {
	PageTitle string
	Todos     []model.Todo
}

type detailView struct {
	PageTitle string
	Todo      model.Todo
}

type formView struct {
	PageTitle string
	Action    string
	Values    model.TodoForm
	Errors    map[string]string
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "list.html", listView{PageTitle: "All todos", Todos: todos})
}

func (h *TodoHandler) Detail(w http.ResponseWriter, r *http.Request) {
	todo, err := h.service.Get(r.Context(), urlID(r))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "detail.html", detailView{PageTitle: todo.Title, Todo: todo})
}

func (h *TodoHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, r, http.StatusOK, "form.html", formView{
		PageTitle: "New todo",
		Action:    "/todo/create/",
	})
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := todoForm(r)

	if _, err := h.service.Create(r.Context(), form); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			// Форма перерисовывается с введенными значениями, без редиректа
			h.render.HTML(w, r, http.StatusOK, "form.html", formView{
				PageTitle: "New todo",
				Action:    "/todo/create/",
				Values:    form,
				Errors:    ve.Fields,
			})
			return
		}
		h.handleErrors(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *TodoHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	todo, err := h.service.Get(r.Context(), urlID(r))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	values := model.TodoForm{
		Title:       todo.Title,
		Description: todo.Description,
	}
	if todo.DueDate != nil {
		values.DueDate = todo.DueDate.Format("2006-01-02")
	}
	if todo.IsResolved {
		values.IsResolved = "on"
	}

	h.render.HTML(w, r, http.StatusOK, "form.html", formView{
		PageTitle: "Edit todo",
		Action:    "/todo/" + strconv.FormatInt(todo.ID, 10) + "/edit/",
		Values:    values,
	})
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)
	form := todoForm(r)

	if _, err := h.service.Update(r.Context(), id, form); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			h.render.HTML(w, r, http.StatusOK, "form.html", formView{
				PageTitle: "Edit todo",
				Action:    r.URL.Path,
				Values:    form,
				Errors:    ve.Fields,
			})
			return
		}
		h.handleErrors(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *TodoHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	todo, err := h.service.Get(r.Context(), urlID(r))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "confirm_delete.html", detailView{PageTitle: "Delete todo", Todo: todo})
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), urlID(r)); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Toggle(r.Context(), urlID(r)); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// urlID парсит {id} из пути; мусор дает 0, которого в сторе нет -> 404
func urlID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func todoForm(r *http.Request) model.TodoForm {
	r.ParseForm()
	return model.TodoForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		DueDate:     r.PostFormValue("due_date"),
		IsResolved:  r.PostFormValue("is_resolved"),
	}
}

func (h *TodoHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		render.Error(w, r, http.StatusNotFound, "page not found")
	default:
		h.logger.Error("internal error", zap.Error(err))
		render.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
