package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"legal_ai_site/services"
	"legal_ai_site/templates/components"

	"github.com/labstack/echo/v4"
)

const articleNotFound = "This article is no longer available. Please refresh the news list."

// NewsArticle renders the detail modal for one article of the feed
func (s *Site) NewsArticle(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return render(c, http.StatusNotFound, components.Alert("error", articleNotFound))
	}

	article, err := s.news.Article(c.Request().Context(), index)
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		return render(c, http.StatusNotFound, components.Alert("error", articleNotFound))
	case err != nil:
		return render(c, http.StatusBadGateway, components.Alert("error", services.NewsErrorMessage))
	}
	return render(c, http.StatusOK, components.ArticleModal(article))
}
