// Package jwtgin adapts the authorization core to Gin.
//
//	authCore, err := core.New(core.WithVerifier(codec))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := gin.New()
//	r.GET("/protected", jwtgin.RequireAuth(authCore), protectedHandler)
//	r.GET("/user-info", jwtgin.AuthUser(authCore), func(c *gin.Context) {
//	    identity, err := jwtgin.GetIdentity(c)
//	    if err != nil {
//	        c.AbortWithStatus(http.StatusInternalServerError)
//	        return
//	    }
//	    c.JSON(http.StatusOK, identity)
//	})
package jwtgin
