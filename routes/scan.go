package routes

import (
	"ecocycle/controllers"

	"github.com/gin-gonic/gin"
)

func ClassifyScanRouteHandler(c *gin.Context) {
	controllers.ClassifyScan(c)
}

func EvaluateScanRouteHandler(c *gin.Context) {
	controllers.EvaluateScan(c)
}

func GetScanHistoryRouteHandler(c *gin.Context) {
	controllers.GetScanHistory(c)
}

func ConfirmActionRouteHandler(c *gin.Context) {
	controllers.ConfirmAction(c)
}
