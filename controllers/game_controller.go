package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gridironhub/chat_backend/models"
)

// GameController serves the league schedule. Game ids double as the room ids
// chat clients scope their messages by.
type GameController struct {
	db *gorm.DB
}

func NewGameController(db *gorm.DB) *GameController {
	return &GameController{db: db}
}

// GetGames returns the schedule ordered by kickoff time. An optional week
// query parameter narrows the result to one week.
func (gc *GameController) GetGames(c *gin.Context) {
	query := gc.db.Model(&models.Game{})

	if value, ok := c.GetQuery("week"); ok {
		week, err := strconv.Atoi(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
			return
		}
		query = query.Where("week = ?", week)
	}

	games := make([]models.Game, 0)
	if err := query.Order("kickoff ASC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetGame returns a single game by id.
func (gc *GameController) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := gc.db.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game})
}
