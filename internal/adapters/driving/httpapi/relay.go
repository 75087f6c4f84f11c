package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// tokenRequest is the relay request body. Field names follow the
// JSON the web client sends.
type tokenRequest struct {
	Code         string `json:"code"`
	CodeVerifier string `json:"codeVerifier"`
	RedirectURI  string `json:"redirectUri"`
}

// handleTokenExchange forwards an authorization-code grant to the
// provider's token endpoint, adding the server-side client secret.
// The provider's response passes through verbatim, success or
// failure, so the client sees exactly what Google said.
func (s *Server) handleTokenExchange(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if req.Code == "" || req.CodeVerifier == "" || req.RedirectURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		s.logger.Error("token relay missing client credentials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_misconfigured"})
		return
	}

	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {s.cfg.ClientID},
		"client_secret": {s.cfg.ClientSecret},
		"code":          {req.Code},
		"code_verifier": {req.CodeVerifier},
		"redirect_uri":  {req.RedirectURI},
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(),
		http.MethodPost, s.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "exchange_failed"})
		return
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Error("token exchange request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "exchange_failed"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Error("reading token response failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "exchange_failed"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, body)
}
