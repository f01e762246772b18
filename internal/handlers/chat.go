package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"fancychat-backend/internal/models"
	"fancychat-backend/internal/services"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, messages json.RawMessage) (*services.ChatCompletion, error)
}

type ChatHandler struct {
	openRouter chatCompleter
}

func NewChatHandler(openRouter chatCompleter) *ChatHandler {
	return &ChatHandler{openRouter: openRouter}
}

// Relay forwards the caller's conversation to the upstream API and returns the
// generated reply.
func (h *ChatHandler) Relay(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid JSON in request body"))
		return
	}

	// message must be present and be an array. Entries themselves are passed
	// through to the upstream untouched. The nil check on items catches a
	// literal null, which unmarshals into a nil slice without error.
	var items []json.RawMessage
	if req.Message == nil || json.Unmarshal(req.Message, &items) != nil || items == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request. Expected {message: []} in body"))
		return
	}

	completion, err := h.openRouter.CreateChatCompletion(r.Context(), req.Message)
	if err != nil {
		handleCompletionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResult{
		Success:  true,
		Response: completion.Response,
		Usage:    completion.Usage,
	})
}

// MethodNotAllowed answers any verb other than POST on the chat route.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method not allowed. Use POST instead."))
}

func handleCompletionError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ConfigError:
		writeJSON(w, http.StatusInternalServerError, errorResp("OpenRouter API key not configured"))
	case *services.TimeoutError:
		writeJSON(w, http.StatusRequestTimeout, errorResp("Request timed out. Please try again."))
	case *services.ConnectionError:
		writeJSON(w, http.StatusServiceUnavailable, errorResp("Unable to reach AI service. Please try again later."))
	case *services.ConnectionTimeoutError:
		writeJSON(w, http.StatusGatewayTimeout, errorResp("Connection to AI service timed out. Please try again."))
	case *services.NetworkError:
		writeJSON(w, http.StatusBadGateway, errorResp("Network error while contacting AI service."))
	case *services.UpstreamError:
		switch {
		case e.StatusCode == http.StatusUnauthorized:
			writeJSON(w, http.StatusUnauthorized, errorResp("Invalid API key. Please check your OpenRouter configuration."))
		case e.StatusCode == http.StatusTooManyRequests:
			writeJSON(w, http.StatusTooManyRequests, errorResp("Rate limit exceeded. Please try again later."))
		case e.StatusCode >= http.StatusInternalServerError:
			writeJSON(w, http.StatusServiceUnavailable, errorResp("AI service is temporarily unavailable. Please try again later."))
		default:
			writeJSON(w, e.StatusCode, errorResp("Failed to get response from AI service"))
		}
	case *services.BadResponseError:
		writeJSON(w, http.StatusBadGateway, errorResp(e.Message))
	default:
		log.Printf("chat relay failed [%s]: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, errorResp("An unexpected error occurred"))
	}
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}
