package handler

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
