package report

// RecordSchema is the JSON schema every sweep line conforms to.
const RecordSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["run_id", "time", "width", "height", "seed", "total_ms", "stages", "categories"],
  "properties": {
    "run_id": {"type": "string", "pattern": "^[0-9a-f-]{36}$"},
    "time": {"type": "string"},
    "width": {"type": "integer", "minimum": 1},
    "height": {"type": "integer", "minimum": 1},
    "seed": {"type": "integer", "minimum": 0},
    "total_ms": {"type": "number", "minimum": 0},
    "min_height": {"type": "number", "minimum": 0, "maximum": 1},
    "max_height": {"type": "number", "minimum": 0, "maximum": 1},
    "mean_height": {"type": "number", "minimum": 0, "maximum": 1},
    "river_cells": {"type": "integer", "minimum": 0},
    "lake_cells": {"type": "integer", "minimum": 0},
    "wave_cells": {"type": "integer", "minimum": 0},
    "stages": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["stage", "ms"],
        "properties": {
          "stage": {"type": "string"},
          "ms": {"type": "number", "minimum": 0}
        }
      }
    },
    "categories": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["category", "cells"],
        "properties": {
          "category": {"type": "string"},
          "cells": {"type": "integer", "minimum": 0}
        }
      }
    },
    "error": {"type": "string"}
  }
}`
