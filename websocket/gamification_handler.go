package websocket

import (
	"log"
	"net/http"
	"strings"

	"ecocycle/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GamificationWebSocketHandler handles WebSocket connections for live
// progression updates. The session token comes from the Authorization
// header or, for browser clients, the token query parameter.
func GamificationWebSocketHandler(c *gin.Context) {
	var tokenString string
	authz := c.GetHeader("Authorization")
	if authz != "" {
		tokenParts := strings.Split(authz, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			tokenString = tokenParts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	claims, err := utils.ValidateJWTToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &GamificationClient{
		Conn:   conn,
		UserID: claims.Email,
	}
	RegisterGamificationClient(client)

	welcomeMsg := map[string]interface{}{
		"type":    "connected",
		"message": "Connected to gamification updates",
		"userId":  claims.Email,
	}
	client.SafeWriteJSON(welcomeMsg)

	defer func() {
		UnregisterGamificationClient(client)
	}()

	// Keep connection alive and handle incoming messages (ping/pong)
	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Gamification WebSocket error: %v", err)
			}
			break
		}

		if messageType == websocket.PingMessage {
			if err := conn.WriteMessage(websocket.PongMessage, nil); err != nil {
				log.Printf("Error writing pong: %v", err)
				break
			}
		}
	}
}
