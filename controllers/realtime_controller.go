package controllers

import (
	"net/http"
	"time"

	"nutriscan/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	wsPingPeriod = 25 * time.Second
	wsPongWait   = 60 * time.Second
	wsReadLimit  = 4 << 10
)

type RealtimeController struct {
	RT  *services.RealtimeHub
	Log logrus.FieldLogger
}

func NewRealtimeController(rt *services.RealtimeHub, log logrus.FieldLogger) *RealtimeController {
	return &RealtimeController{RT: rt, Log: log}
}

var upgrader = websocket.Upgrader{
	// the bearer token is the access check; mobile clients send no Origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /api/realtime/ws
func (rc *RealtimeController) Events(c *gin.Context) {
	uid := c.GetString("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	cl := services.NewWSClient(uid, conn)
	rc.RT.Register(cl)
	defer rc.RT.Unregister(cl)

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	go cl.WritePump(wsPingPeriod)

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// GET /api/realtime/connections/:userId (admin)
func (rc *RealtimeController) Connections(c *gin.Context) {
	ok(c, gin.H{"connections": rc.RT.Connections(c.Param("userId"))})
}
