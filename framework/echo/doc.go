// Package jwtecho adapts the authorization core to Echo.
//
//	e := echo.New()
//	e.GET("/user-info", func(c echo.Context) error {
//	    identity, err := jwtecho.GetIdentity(c)
//	    if err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, identity)
//	}, jwtecho.AuthUser(authCore))
package jwtecho
