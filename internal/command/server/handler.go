package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lwmacct/260828-go-pkg-strexp/internal/config"
	"github.com/lwmacct/260828-go-pkg-strexp/pkg/strexp"
)

type expandRequest struct {
	Template string            `json:"template"`
	Vars     map[string]string `json:"vars"`
}

type expandResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// newMux 构造服务的路由。
//
// 变量优先级 (从高到低)：请求 vars、配置 vars、环境变量（仅当 expand.env 开启）。
func newMux(cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, `{"status":"ok"}`)
	})

	// 默认首页（{$} 精确匹配根路径）
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"service":"strexp"}`)
	})

	mux.HandleFunc("POST /api/expand", func(w http.ResponseWriter, r *http.Request) {
		var req expandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})

			return
		}

		lookups := []strexp.Lookup{
			strexp.LookupMap(req.Vars),
			strexp.LookupMap(cfg.Expand.Vars),
		}
		if cfg.Expand.Env {
			lookups = append(lookups, strexp.LookupEnv)
		}

		result, err := strexp.Expand(req.Template, strexp.LookupFirst(lookups...))
		if err != nil {
			slog.Debug("Expansion rejected", "error", err)
			writeJSON(w, expandStatus(err), errorResponse{Error: err.Error()})

			return
		}

		writeJSON(w, http.StatusOK, expandResponse{Result: result})
	})

	return mux
}

// expandStatus 将展开错误映射为 HTTP 状态码。
func expandStatus(err error) int {
	switch {
	case errors.Is(err, strexp.ErrInvalidFormat), errors.Is(err, strexp.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, strexp.ErrNotDefined):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
