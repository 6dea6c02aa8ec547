// Package docs holds the generated OpenAPI description served at /swagger.
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
				"tags": [
					"system"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/auth/sign-up": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a chef",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"description": "Credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.authCredentials"
						}
					}
				]
			}
		},
		"/auth/sign-in": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Issue an API token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"description": "Credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.authCredentials"
						}
					}
				]
			}
		},
		"/api/v1/game/solo": {
			"post": {
				"tags": [
					"game"
				],
				"summary": "Start a new solo game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/continue": {
			"post": {
				"tags": [
					"game"
				],
				"summary": "Continue the saved solo game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/save": {
			"get": {
				"tags": [
					"game"
				],
				"summary": "Check for a solo save",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/host": {
			"post": {
				"tags": [
					"game"
				],
				"summary": "Host a co-op game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/join": {
			"post": {
				"tags": [
					"game"
				],
				"summary": "Join a co-op game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Room code",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.joinRequest"
						}
					}
				]
			}
		},
		"/api/v1/game/actions": {
			"post": {
				"tags": [
					"game"
				],
				"summary": "Send a player action",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Snapshot"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Action",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.ActionRequest"
						}
					}
				]
			}
		},
		"/api/v1/game/state": {
			"get": {
				"tags": [
					"game"
				],
				"summary": "Get the kitchen snapshot",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Snapshot"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/menu": {
			"get": {
				"tags": [
					"game"
				],
				"summary": "List recipes",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/review": {
			"get": {
				"tags": [
					"game"
				],
				"summary": "Get the end-of-day review",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DailyReview"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/status": {
			"get": {
				"tags": [
					"game"
				],
				"summary": "Get session status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.SessionStatus"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/game/mute": {
			"post": {
				"tags": [
					"game"
				],
				"summary": "Toggle sound cues",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/ranking": {
			"get": {
				"tags": [
					"ranking"
				],
				"summary": "Leaderboard",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Number of entries (default 6, max 50)",
						"name": "limit",
						"in": "query"
					}
				]
			}
		},
		"/api/v1/logs": {
			"get": {
				"tags": [
					"logs"
				],
				"summary": "List kitchen journal",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "from",
						"in": "query",
						"description": "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
					},
					{
						"type": "string",
						"name": "to",
						"in": "query",
						"description": "End of range. Date-only treated as end of day."
					},
					{
						"enum": [
							"DAY_STARTED",
							"DAY_COMPLETED",
							"DAY_ADVANCED",
							"ORDER_SERVED",
							"ORDER_EXPIRED",
							"MISSERVE",
							"STATION_CLEARED",
							"GAME_OVER"
						],
						"type": "string",
						"name": "type",
						"in": "query",
						"description": "Event type"
					}
				]
			}
		}
	},
	"definitions": {
		"handlers.authCredentials": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handlers.joinRequest": {
			"type": "object",
			"properties": {
				"room": {
					"type": "string"
				}
			},
			"required": [
				"room"
			]
		},
		"handlers.ActionRequest": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string",
					"example": "KEY_PRESS"
				},
				"stationId": {
					"type": "integer",
					"example": 0
				},
				"recipeId": {
					"type": "string",
					"example": "salada"
				},
				"key": {
					"type": "string",
					"example": "P"
				}
			},
			"required": [
				"type"
			]
		},
		"models.GameState": {
			"type": "object",
			"properties": {
				"money": {
					"type": "integer"
				},
				"hygiene": {
					"type": "number"
				},
				"score": {
					"type": "integer"
				},
				"day": {
					"type": "integer"
				},
				"dailyTarget": {
					"type": "integer"
				},
				"timeRemaining": {
					"type": "integer"
				},
				"phase": {
					"type": "string"
				},
				"gameMode": {
					"type": "string"
				}
			}
		},
		"models.Station": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"state": {
					"type": "string"
				},
				"currentRecipeId": {
					"type": "string"
				},
				"prepSequence": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"cookProgress": {
					"type": "number"
				}
			}
		},
		"models.Order": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"recipeId": {
					"type": "string"
				},
				"patience": {
					"type": "number"
				},
				"status": {
					"type": "string"
				},
				"createdAt": {
					"type": "integer"
				}
			}
		},
		"models.Snapshot": {
			"type": "object",
			"properties": {
				"gameState": {
					"$ref": "#/definitions/models.GameState"
				},
				"stations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Station"
					}
				},
				"orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Order"
					}
				},
				"activeStationIds": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"models.DailyReview": {
			"type": "object",
			"properties": {
				"day": {
					"type": "integer"
				},
				"money": {
					"type": "integer"
				},
				"target": {
					"type": "integer"
				},
				"hygiene": {
					"type": "number"
				},
				"score": {
					"type": "integer"
				},
				"success": {
					"type": "boolean"
				},
				"mood": {
					"type": "string"
				},
				"verdict": {
					"type": "string"
				}
			}
		},
		"service.SessionStatus": {
			"type": "object",
			"properties": {
				"mode": {
					"type": "string"
				},
				"phase": {
					"type": "string"
				},
				"room": {
					"type": "string"
				},
				"connection": {
					"type": "string"
				},
				"muted": {
					"type": "boolean"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pixel Bistro API",
	Description:      "Kitchen simulation: solo and co-op sessions, ranking and journal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
