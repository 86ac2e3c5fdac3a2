// @title           Scholarly API
// @version         1.0
// @description     API каталога стипендий: поиск, заявки, отзывы и избранное.
// @contact.name    Scholarly
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey CookieAuth
// @in              cookie
// @name            token

package main

import "scholarly_backend/internal/app"

func main() {
	app.Run()
}
