// Package docs содержит OpenAPI-описание API для gin-swagger.
// Собрано по аннотациям обработчиков, перегенерировать: swag init -g cmd/web/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Scholarly"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Проверка, что сервер запущен",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/add-scholarships": {
            "post": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scholarships"
                ],
                "summary": "Добавить стипендию (admin)",
                "parameters": [
                    {
                        "description": "Стипендия",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateScholarshipRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateScholarshipResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/applications": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Сортировка pending, processing, completed, rejected, затем по дате создания",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Все заявки (admin)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Application"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Email заявителя берется из сессии, поля стипендии копируются в заявку",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Подать заявку на стипендию",
                "parameters": [
                    {
                        "description": "Заявка",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateApplicationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateApplicationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/applications/feedback/{id}": {
            "patch": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Отзыв модератора по заявке (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID заявки",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Feedback",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FeedbackRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    }
                }
            }
        },
        "/applications/user/{email}": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Заявки пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Application"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/applications/{id}": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Заявка по ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID заявки",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Владелец меняет данные пока заявка pending; статус и feedback меняет admin",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Изменить заявку",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID заявки",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменения",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateApplicationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Application"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Только владелец и только пока заявка pending",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "applications"
                ],
                "summary": "Отозвать заявку",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID заявки",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeletedResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Проверка соединения с БД",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/jwt": {
            "post": {
                "description": "Подписывает JWT для email/имени клиента и кладет его в httpOnly cookie \"token\"",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Выдать сессионный токен",
                "parameters": [
                    {
                        "description": "Идентичность клиента",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.IssueTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/logout": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Сбросить сессию",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    }
                }
            }
        },
        "/reviews": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Все отзывы (moderator+)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Review"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Один отзыв на пару (email, scholarshipId); после записи пересчитывается рейтинг стипендии",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Оставить или обновить отзыв",
                "parameters": [
                    {
                        "description": "Отзыв",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpsertReviewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReviewUpsertResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/reviews/user/{email}": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Отзывы пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email автора",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Review"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/reviews/{id}": {
            "delete": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Удалить отзыв (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID отзыва",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeletedResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/reviews/{scholarshipId}": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reviews"
                ],
                "summary": "Отзывы по стипендии",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID стипендии",
                        "name": "scholarshipId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Review"
                            }
                        }
                    }
                }
            }
        },
        "/scholarships": {
            "get": {
                "description": "Фильтры по категории, предмету, штату (без учета регистра), поиск, сортировка и пагинация",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scholarships"
                ],
                "summary": "Каталог стипендий",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Категория (алиас schCat)",
                        "name": "scholarshipCategory",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Предмет (алиас subCat)",
                        "name": "subjectCategory",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Штат",
                        "name": "state",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Поиск по названию, университету, предмету",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "amount_asc|amount_desc|deadline_asc|deadline_desc|rating_desc|newest",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Страница",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Размер страницы",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ScholarshipListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/scholarships/{id}": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scholarships"
                ],
                "summary": "Стипендия по ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID стипендии",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Scholarship"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scholarships"
                ],
                "summary": "Изменить стипендию (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID стипендии",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменения",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateScholarshipRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Scholarship"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "adminEmail должен совпадать с email сессии",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scholarships"
                ],
                "summary": "Удалить стипендию (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID стипендии",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Email администратора",
                        "name": "adminEmail",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeletedResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/users": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Список пользователей (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Поиск по имени или email",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Фильтр по роли",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Страница",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Размер страницы",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "post": {
                "description": "Создает пользователя с ролью student, если email еще не занят",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Зарегистрировать пользователя",
                "parameters": [
                    {
                        "description": "Данные пользователя",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateUserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/users/{email}/role": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Для неизвестного email возвращается student",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Роль пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RoleResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "patch": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Свой профиль может менять сам пользователь, роль меняет только admin (не себе)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Обновить пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID пользователя",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменения",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Удалить пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID пользователя",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeletedResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/wishlists": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "wishlists"
                ],
                "summary": "Избранное пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email владельца (должен совпадать с сессией)",
                        "name": "email",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.WishlistItem"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "description": "Повторное добавление не создает дубликат",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "wishlists"
                ],
                "summary": "Добавить стипендию в избранное",
                "parameters": [
                    {
                        "description": "Запись",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddWishlistRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AddWishlistResponse"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AddWishlistResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        },
        "/wishlists/check/{scholarshipId}": {
            "get": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "wishlists"
                ],
                "summary": "Есть ли стипендия в избранном",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID стипендии",
                        "name": "scholarshipId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Email (если передан, должен совпадать с сессией)",
                        "name": "email",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WishlistCheckResponse"
                        }
                    }
                }
            }
        },
        "/wishlists/{id}": {
            "delete": {
                "security": [
                    {
                        "CookieAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "wishlists"
                ],
                "summary": "Удалить из избранного",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID записи",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DeletedResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/apperrors.AppError"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "apperrors.AppError": {
            "type": "object",
            "properties": {
                "code": {
                    "$ref": "#/definitions/apperrors.ErrorCode"
                },
                "details": {},
                "domain": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "apperrors.ErrorCode": {
            "type": "string",
            "enum": [
                "INTERNAL_ERROR",
                "DATABASE_ERROR",
                "NOT_FOUND",
                "VALIDATION_FAILED",
                "INVALID_IDENTIFIER",
                "INVALID_STATUS",
                "RATE_LIMITED",
                "UNAUTHORIZED",
                "FORBIDDEN",
                "INVALID_TOKEN",
                "IDENTITY_MISMATCH"
            ],
            "x-enum-varnames": [
                "CodeInternalError",
                "CodeDatabaseError",
                "CodeNotFound",
                "CodeValidationFailed",
                "CodeInvalidIdentifier",
                "CodeInvalidStatus",
                "CodeRateLimited",
                "CodeUnauthorized",
                "CodeForbidden",
                "CodeInvalidToken",
                "CodeIdentityMismatch"
            ]
        },
        "dto.AddWishlistRequest": {
            "type": "object",
            "required": [
                "scholarshipId"
            ],
            "properties": {
                "scholarshipId": {
                    "type": "string"
                },
                "userEmail": {
                    "type": "string"
                }
            }
        },
        "dto.AddWishlistResponse": {
            "type": "object",
            "properties": {
                "insertedId": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.CreateApplicationRequest": {
            "type": "object",
            "required": [
                "scholarshipId"
            ],
            "properties": {
                "address": {
                    "type": "string",
                    "maxLength": 1000
                },
                "degree": {
                    "type": "string",
                    "maxLength": 100
                },
                "phone": {
                    "type": "string",
                    "maxLength": 50
                },
                "scholarshipId": {
                    "type": "string"
                },
                "userName": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "dto.CreateApplicationResponse": {
            "type": "object",
            "properties": {
                "application": {
                    "$ref": "#/definitions/models.Application"
                },
                "insertedId": {
                    "type": "string"
                }
            }
        },
        "dto.CreateScholarshipRequest": {
            "type": "object",
            "required": [
                "scholarshipName",
                "universityName",
                "state",
                "subjectCategory",
                "scholarshipCategory",
                "applicationDeadline"
            ],
            "properties": {
                "applicationDeadline": {
                    "type": "string",
                    "format": "date"
                },
                "applicationFees": {
                    "type": "number",
                    "minimum": 0
                },
                "includes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "scholarshipAmount": {
                    "type": "number",
                    "minimum": 0
                },
                "scholarshipCategory": {
                    "type": "string"
                },
                "scholarshipName": {
                    "type": "string",
                    "maxLength": 255
                },
                "state": {
                    "type": "string",
                    "maxLength": 100
                },
                "subjectCategory": {
                    "type": "string"
                },
                "universityImage": {
                    "type": "string"
                },
                "universityName": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "dto.CreateScholarshipResponse": {
            "type": "object",
            "properties": {
                "insertedId": {
                    "type": "string"
                },
                "scholarship": {
                    "$ref": "#/definitions/models.Scholarship"
                }
            }
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "displayName": {
                    "type": "string",
                    "maxLength": 255
                },
                "email": {
                    "type": "string"
                },
                "photoURL": {
                    "type": "string"
                }
            }
        },
        "dto.CreateUserResponse": {
            "type": "object",
            "properties": {
                "insertedId": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "dto.DeletedResponse": {
            "type": "object",
            "properties": {
                "deletedCount": {
                    "type": "integer"
                }
            }
        },
        "dto.FeedbackRequest": {
            "type": "object",
            "required": [
                "feedback"
            ],
            "properties": {
                "feedback": {
                    "type": "string",
                    "maxLength": 2000
                }
            }
        },
        "dto.IssueTokenRequest": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.PageMeta": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.ReviewUpsertResponse": {
            "type": "object",
            "properties": {
                "ratings": {
                    "type": "integer"
                },
                "review": {
                    "$ref": "#/definitions/models.Review"
                },
                "totalReview": {
                    "type": "integer"
                }
            }
        },
        "dto.RoleResponse": {
            "type": "object",
            "properties": {
                "role": {
                    "$ref": "#/definitions/models.UserRole"
                }
            }
        },
        "dto.ScholarshipListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Scholarship"
                    }
                },
                "meta": {
                    "$ref": "#/definitions/dto.PageMeta"
                }
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.UpdateApplicationRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string",
                    "maxLength": 1000
                },
                "applicationStatus": {
                    "type": "string"
                },
                "degree": {
                    "type": "string",
                    "maxLength": 100
                },
                "feedback": {
                    "type": "string",
                    "maxLength": 2000
                },
                "phone": {
                    "type": "string",
                    "maxLength": 50
                },
                "userName": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "dto.UpdateScholarshipRequest": {
            "type": "object",
            "properties": {
                "applicationDeadline": {
                    "type": "string",
                    "format": "date"
                },
                "applicationFees": {
                    "type": "number",
                    "minimum": 0
                },
                "includes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "scholarshipAmount": {
                    "type": "number",
                    "minimum": 0
                },
                "scholarshipCategory": {
                    "type": "string"
                },
                "scholarshipName": {
                    "type": "string",
                    "minLength": 1,
                    "maxLength": 255
                },
                "state": {
                    "type": "string",
                    "minLength": 1,
                    "maxLength": 100
                },
                "subjectCategory": {
                    "type": "string"
                },
                "universityImage": {
                    "type": "string"
                },
                "universityName": {
                    "type": "string",
                    "minLength": 1,
                    "maxLength": 255
                }
            }
        },
        "dto.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "displayName": {
                    "type": "string",
                    "maxLength": 255
                },
                "photoURL": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "dto.UpsertReviewRequest": {
            "type": "object",
            "required": [
                "scholarshipId",
                "rating"
            ],
            "properties": {
                "comment": {
                    "type": "string",
                    "maxLength": 2000
                },
                "rating": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "scholarshipId": {
                    "type": "string"
                },
                "userImage": {
                    "type": "string"
                },
                "userName": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "dto.UserListResponse": {
            "type": "object",
            "properties": {
                "totalUsers": {
                    "type": "integer"
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.User"
                    }
                }
            }
        },
        "dto.WishlistCheckResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "isSaved": {
                    "type": "boolean"
                }
            }
        },
        "dto.WishlistItem": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "scholarshipAmount": {
                    "type": "number"
                },
                "scholarshipCategory": {
                    "type": "string"
                },
                "scholarshipId": {
                    "type": "string"
                },
                "scholarshipName": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "subjectCategory": {
                    "type": "string"
                },
                "universityImage": {
                    "type": "string"
                },
                "universityName": {
                    "type": "string"
                },
                "userEmail": {
                    "type": "string"
                }
            }
        },
        "models.Application": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "applicationFees": {
                    "type": "number"
                },
                "applicationStatus": {
                    "$ref": "#/definitions/models.ApplicationStatus"
                },
                "createdAt": {
                    "type": "string"
                },
                "degree": {
                    "type": "string"
                },
                "feedback": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "scholarshipCategory": {
                    "$ref": "#/definitions/models.ScholarshipCategory"
                },
                "scholarshipId": {
                    "type": "string"
                },
                "scholarshipName": {
                    "type": "string"
                },
                "subjectCategory": {
                    "type": "string"
                },
                "universityName": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "userEmail": {
                    "type": "string"
                },
                "userName": {
                    "type": "string"
                }
            }
        },
        "models.ApplicationStatus": {
            "type": "string",
            "enum": [
                "pending",
                "processing",
                "completed",
                "rejected"
            ],
            "x-enum-varnames": [
                "ApplicationStatusPending",
                "ApplicationStatusProcessing",
                "ApplicationStatusCompleted",
                "ApplicationStatusRejected"
            ]
        },
        "models.Review": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "comment": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "scholarshipId": {
                    "type": "string"
                },
                "updatedDate": {
                    "type": "string"
                },
                "userImage": {
                    "type": "string"
                },
                "userName": {
                    "type": "string"
                }
            }
        },
        "models.Scholarship": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "applicationDeadline": {
                    "type": "string"
                },
                "applicationFees": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                },
                "includes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "postedUserEmail": {
                    "type": "string"
                },
                "ratings": {
                    "type": "integer"
                },
                "scholarshipAmount": {
                    "type": "number"
                },
                "scholarshipCategory": {
                    "$ref": "#/definitions/models.ScholarshipCategory"
                },
                "scholarshipName": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "subjectCategory": {
                    "type": "string"
                },
                "totalReview": {
                    "type": "integer"
                },
                "universityImage": {
                    "type": "string"
                },
                "universityName": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.ScholarshipCategory": {
            "type": "string",
            "enum": [
                "Government",
                "Corporate CSR",
                "Institutional",
                "NGO"
            ],
            "x-enum-varnames": [
                "ScholarshipCategoryGovernment",
                "ScholarshipCategoryCorporateCSR",
                "ScholarshipCategoryInstitutional",
                "ScholarshipCategoryNGO"
            ]
        },
        "models.User": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "photoURL": {
                    "type": "string"
                },
                "role": {
                    "$ref": "#/definitions/models.UserRole"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.UserRole": {
            "type": "string",
            "enum": [
                "student",
                "moderator",
                "admin"
            ],
            "x-enum-varnames": [
                "UserRoleStudent",
                "UserRoleModerator",
                "UserRoleAdmin"
            ]
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Scholarly API",
	Description:      "API каталога стипендий: поиск, заявки, отзывы и избранное.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
