// Package docs is generated by swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/stores": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Backing store reachability",
                "responses": {"200": {"description": "OK"}, "503": {"description": "a store is down"}}
            }
        },
        "/movies/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "List movies",
                "parameters": [
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http_movie.MoviesPageResponseDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Create a movie",
                "parameters": [
                    {"description": "movie", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http_movie.CreateMovieRequestDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Movie"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/movies/{movie_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Get a movie",
                "parameters": [{"type": "string", "name": "movie_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Movie"}},
                    "400": {"description": "malformed id", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/movies/search/{title}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Search movies by title",
                "parameters": [
                    {"type": "string", "name": "title", "in": "path", "required": true},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http_movie.SearchResponseDTO"}}}
            }
        },
        "/movies/recommendations/popular": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Popular movies",
                "parameters": [{"type": "integer", "default": 10, "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/graph/similar/{movie_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Graph"],
                "summary": "Movies sharing genres",
                "parameters": [
                    {"type": "string", "name": "movie_id", "in": "path", "required": true},
                    {"type": "integer", "default": 5, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/graph/resync": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Graph"],
                "summary": "Replay the catalog into the graph",
                "parameters": [{"type": "boolean", "name": "recompute", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/usecase_graph.ResyncReport"}}}
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "new user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http_user.RegisterRequestDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http_user.UserResponseDTO"}},
                    "409": {"description": "username or email taken", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "description": "Returns a session token to send in the X-Session-Token header",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Log in",
                "parameters": [
                    {"description": "credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http_user.LoginRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http_user.LoginResponseDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        },
        "/reviews/": {
            "post": {
                "description": "One review per user and movie. Updates the movie's rating aggregate.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reviews"],
                "summary": "Review a movie",
                "parameters": [
                    {"description": "review", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http_review.CreateReviewRequestDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http_review.ReviewResponseDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}},
                    "404": {"description": "movie not found", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}},
                    "409": {"description": "already reviewed", "schema": {"$ref": "#/definitions/http_common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http_common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.Movie": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "year": {"type": "integer"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "director": {"type": "string"},
                "cast": {"type": "array", "items": {"type": "string"}},
                "poster_url": {"type": "string"},
                "tagline": {"type": "string"},
                "avg_rating": {"type": "number"},
                "num_reviews": {"type": "integer"},
                "popularity": {"type": "number"},
                "budget": {"type": "integer"},
                "revenue": {"type": "integer"},
                "runtime": {"type": "integer"},
                "tmdb_id": {"type": "integer"}
            }
        },
        "http_movie.CreateMovieRequestDTO": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "year": {"type": "integer"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "director": {"type": "string"},
                "cast": {"type": "array", "items": {"type": "string"}},
                "poster_url": {"type": "string"},
                "tagline": {"type": "string"}
            }
        },
        "http_movie.MoviesPageResponseDTO": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/model.Movie"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "skip": {"type": "integer"},
                "has_more": {"type": "boolean"}
            }
        },
        "http_movie.SearchResponseDTO": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/model.Movie"}},
                "search_term": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "http_user.RegisterRequestDTO": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "bio": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "http_user.LoginRequestDTO": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http_user.LoginResponseDTO": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "token": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "http_user.UserResponseDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "bio": {"type": "string"},
                "avatar_url": {"type": "string"},
                "bookmarks": {"type": "array", "items": {"type": "string"}},
                "joined_at": {"type": "string"}
            }
        },
        "http_review.CreateReviewRequestDTO": {
            "type": "object",
            "required": ["user_id", "movie_id", "rating"],
            "properties": {
                "user_id": {"type": "string"},
                "movie_id": {"type": "string"},
                "rating": {"type": "integer", "maximum": 5, "minimum": 1},
                "review": {"type": "string"}
            }
        },
        "http_review.ReviewResponseDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "movie_id": {"type": "string"},
                "rating": {"type": "integer"},
                "review": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "usecase_graph.ResyncReport": {
            "type": "object",
            "properties": {
                "movies": {"type": "integer"},
                "failed": {"type": "integer"},
                "stats_updated": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CineMate API",
	Description:      "Movie catalog and recommendations over MongoDB, Redis and Neo4j.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
