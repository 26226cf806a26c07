// Package docs registers the OpenAPI document served at /swagger/doc.json.
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
        "/predictions": {
            "get": {
                "description": "Match winner, total sets, first set, handicap and comeback predictions for two players",
                "produces": ["application/json"],
                "tags": ["Predictions"],
                "summary": "Get match betting predictions",
                "parameters": [
                    {"type": "integer", "description": "First player key", "name": "player1", "in": "query", "required": true},
                    {"type": "integer", "description": "Second player key", "name": "player2", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MatchBettingPredictions"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/predictions/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Predictions"],
                "summary": "Batch match predictions",
                "parameters": [
                    {"description": "Matchups to predict", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/worker.BatchResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/h2h/{player1}/{player2}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Head-to-head summary",
                "parameters": [
                    {"type": "integer", "description": "First player key", "name": "player1", "in": "path", "required": true},
                    {"type": "integer", "description": "Second player key", "name": "player2", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.H2HSummary"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/matches/analysis": {
            "get": {
                "description": "Both player overviews, the H2H summary and match list, and each player's recent matches",
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Match analysis",
                "parameters": [
                    {"type": "integer", "description": "First player key", "name": "player1", "in": "query", "required": true},
                    {"type": "integer", "description": "Second player key", "name": "player2", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MatchAnalysis"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/players/{playerKey}/performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Player performance profile",
                "parameters": [
                    {"type": "integer", "description": "Player key", "name": "playerKey", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlayerPerformanceProfile"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/players/{playerKey}/analysis": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Player career analysis",
                "parameters": [
                    {"type": "integer", "description": "Player key", "name": "playerKey", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlayerAnalysis"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.BatchRequest": {
            "type": "object",
            "properties": {
                "matchups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/worker.Matchup"
                    },
                    "maxItems": 25,
                    "minItems": 1
                }
            },
            "required": [
                "matchups"
            ]
        },
        "models.BettingPrediction": {
            "type": "object",
            "properties": {
                "bet_type": {
                    "type": "string"
                },
                "confidence": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 1
                },
                "data_sources": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "predicted_outcome": {
                    "type": "string"
                },
                "reasoning": {
                    "type": "string"
                },
                "recommendation": {
                    "$ref": "#/definitions/models.Recommendation"
                },
                "recommended_odds": {
                    "type": "number",
                    "minimum": 1
                }
            }
        },
        "models.DataStatus": {
            "type": "string",
            "enum": [
                "ok",
                "empty",
                "failed"
            ],
            "x-enum-varnames": [
                "DataOK",
                "DataEmpty",
                "DataFailed"
            ]
        },
        "models.H2HMatchData": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "result": {
                    "type": "string"
                },
                "round": {
                    "type": "string"
                },
                "tournament": {
                    "type": "string"
                },
                "winner": {
                    "type": "string"
                }
            }
        },
        "models.H2HSummary": {
            "type": "object",
            "properties": {
                "average_sets": {
                    "type": "number"
                },
                "placeholder_set_data": {
                    "type": "boolean"
                },
                "player1_first_set_win_rate": {
                    "type": "number"
                },
                "player1_win_rate": {
                    "type": "number"
                },
                "player1_wins": {
                    "type": "integer"
                },
                "player2_first_set_win_rate": {
                    "type": "number"
                },
                "player2_win_rate": {
                    "type": "number"
                },
                "player2_wins": {
                    "type": "integer"
                },
                "recent_results": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "tie_break_rate": {
                    "type": "number"
                },
                "tie_breaks": {
                    "type": "integer"
                },
                "total_matches": {
                    "type": "integer"
                }
            }
        },
        "models.MatchAnalysis": {
            "type": "object",
            "properties": {
                "analyzed_at": {
                    "type": "string"
                },
                "h2h": {
                    "$ref": "#/definitions/models.H2HSummary"
                },
                "h2h_matches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.H2HMatchData"
                    }
                },
                "player1": {
                    "$ref": "#/definitions/models.PlayerPerformanceProfile"
                },
                "player1_recent_matches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.PlayerRecentMatch"
                    }
                },
                "player2": {
                    "$ref": "#/definitions/models.PlayerPerformanceProfile"
                },
                "player2_recent_matches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.PlayerRecentMatch"
                    }
                }
            }
        },
        "models.MatchBettingPredictions": {
            "type": "object",
            "properties": {
                "data_quality": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/models.DataStatus"
                    }
                },
                "overall_confidence": {
                    "type": "number"
                },
                "player1_key": {
                    "type": "integer"
                },
                "player1_name": {
                    "type": "string"
                },
                "player2_key": {
                    "type": "integer"
                },
                "player2_name": {
                    "type": "string"
                },
                "predicted_at": {
                    "type": "string"
                },
                "predictions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.BettingPrediction"
                    },
                    "maxItems": 5,
                    "minItems": 5
                }
            }
        },
        "models.OverallStats": {
            "type": "object",
            "properties": {
                "lost": {
                    "type": "integer"
                },
                "titles": {
                    "type": "integer"
                },
                "win_rate": {
                    "type": "number"
                },
                "won": {
                    "type": "integer"
                }
            }
        },
        "models.PlayerAnalysis": {
            "type": "object",
            "properties": {
                "analyzed_at": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "overall": {
                    "$ref": "#/definitions/models.OverallStats"
                },
                "player_key": {
                    "type": "integer"
                },
                "player_name": {
                    "type": "string"
                },
                "ranking": {
                    "$ref": "#/definitions/models.RankingInfo"
                },
                "seasons_played": {
                    "type": "integer"
                },
                "surfaces": {
                    "$ref": "#/definitions/models.SurfaceStats"
                }
            }
        },
        "models.PlayerPerformanceProfile": {
            "type": "object",
            "properties": {
                "analyzed_at": {
                    "type": "string"
                },
                "clay_court_win_rate": {
                    "type": "number"
                },
                "grass_win_rate": {
                    "type": "number"
                },
                "hard_court_win_rate": {
                    "type": "number"
                },
                "league": {
                    "type": "string"
                },
                "player_key": {
                    "type": "integer"
                },
                "player_name": {
                    "type": "string"
                },
                "points": {
                    "type": "integer"
                },
                "ranking": {
                    "type": "integer"
                },
                "season": {
                    "type": "string"
                },
                "season_win_rate": {
                    "type": "number"
                },
                "total_matches": {
                    "type": "integer"
                }
            }
        },
        "models.PlayerRecentMatch": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "first_player": {
                    "type": "string"
                },
                "result": {
                    "type": "string"
                },
                "round": {
                    "type": "string"
                },
                "second_player": {
                    "type": "string"
                },
                "tournament": {
                    "type": "string"
                },
                "winner": {
                    "type": "string"
                }
            }
        },
        "models.RankingInfo": {
            "type": "object",
            "properties": {
                "atp_points": {
                    "type": "string"
                },
                "atp_rank": {
                    "type": "string"
                },
                "current_league": {
                    "type": "string"
                },
                "wta_points": {
                    "type": "string"
                },
                "wta_rank": {
                    "type": "string"
                }
            }
        },
        "models.Recommendation": {
            "type": "string",
            "enum": [
                "StrongBet",
                "ModerateBet",
                "WeakBet",
                "AvoidBet"
            ],
            "x-enum-varnames": [
                "StrongBet",
                "ModerateBet",
                "WeakBet",
                "AvoidBet"
            ]
        },
        "models.SurfaceStats": {
            "type": "object",
            "properties": {
                "clay": {
                    "$ref": "#/definitions/models.WLRecord"
                },
                "grass": {
                    "$ref": "#/definitions/models.WLRecord"
                },
                "hard": {
                    "$ref": "#/definitions/models.WLRecord"
                }
            }
        },
        "models.WLRecord": {
            "type": "object",
            "properties": {
                "lost": {
                    "type": "integer"
                },
                "win_rate": {
                    "type": "number"
                },
                "won": {
                    "type": "integer"
                }
            }
        },
        "worker.BatchResult": {
            "type": "object",
            "properties": {
                "batch_id": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/worker.Result"
                    }
                }
            }
        },
        "worker.Matchup": {
            "type": "object",
            "properties": {
                "player1": {
                    "type": "integer"
                },
                "player2": {
                    "type": "integer"
                }
            },
            "required": [
                "player1",
                "player2"
            ]
        },
        "worker.Result": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "index": {
                    "type": "integer"
                },
                "player1": {
                    "type": "integer"
                },
                "player2": {
                    "type": "integer"
                },
                "predictions": {
                    "$ref": "#/definitions/models.MatchBettingPredictions"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Tennis Bet Recommender API",
	Description:      "Head-to-head and player-statistics based betting predictions for tennis matches.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
