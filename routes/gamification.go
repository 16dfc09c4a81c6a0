package routes

import (
	"ecocycle/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(c *gin.Context) {
	controllers.GetProfile(c)
}

func GetAchievementsRouteHandler(c *gin.Context) {
	controllers.GetAchievements(c)
}

func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}

func GetPlayerRankRouteHandler(c *gin.Context) {
	controllers.GetPlayerRank(c)
}

func GetCampusStatsRouteHandler(c *gin.Context) {
	controllers.GetCampusStats(c)
}
