// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	note TEXT NOT NULL,

	pair TEXT NOT NULL,
	balance REAL NOT NULL,
	risk_percent REAL NOT NULL,
	stop_loss_pips REAL NOT NULL,
	take_profit_pips REAL NOT NULL,
	custom_pip_value REAL NOT NULL,
	lot_step REAL NOT NULL,
	account_tier TEXT NOT NULL,

	money_at_risk REAL NOT NULL,
	pip_value_per_lot REAL NOT NULL,
	raw_lot_size REAL NOT NULL,
	quantized_lot_size REAL NOT NULL,
	pip_value_for_position REAL NOT NULL,
	effective_lot_step REAL NOT NULL,
	adjusted_lot_size REAL NOT NULL,

	risk_reward REAL NOT NULL,
	position_value REAL NOT NULL,
	margin_required REAL NOT NULL,
	free_margin REAL NOT NULL,
	daily_loss_limit REAL NOT NULL,
	weekly_loss_limit REAL NOT NULL,

	score INTEGER NOT NULL,
	level TEXT NOT NULL,
	insights TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_time ON scenarios(time);
`

const scenarioColumns = `id, time, note,
	pair, balance, risk_percent, stop_loss_pips, take_profit_pips, custom_pip_value, lot_step, account_tier,
	money_at_risk, pip_value_per_lot, raw_lot_size, quantized_lot_size, pip_value_for_position, effective_lot_step, adjusted_lot_size,
	risk_reward, position_value, margin_required, free_margin, daily_loss_limit, weekly_loss_limit,
	score, level, insights`
