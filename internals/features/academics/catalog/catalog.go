// Package catalog holds the fixed SQL statements behind every API operation.
// All caller-supplied values travel as named bind parameters (@name); query
// text is never assembled from request input. Optional filters use the
// "(col = @p or @p is null)" form so an unset parameter is a vacuously true
// predicate. List statements attach a window count (_total) to every row so
// total and page come back in one round trip.
package catalog

import "fmt"

// Key identifies one (resource, operation) entry in the catalogue.
type Key string

const (
	AlunoList   Key = "aluno.list"
	AlunoDetail Key = "aluno.detail"

	CursoList     Key = "curso.list"
	CursoDetail   Key = "curso.detail"
	CursoUnidades Key = "curso.unidades"

	CurriculoList   Key = "curriculo.list"
	CurriculoDetail Key = "curriculo.detail"

	CurriculoDisciplinaList   Key = "curriculo.disciplina.list"
	CurriculoDisciplinaDetail Key = "curriculo.disciplina.detail"

	DisciplinaList   Key = "disciplina.list"
	DisciplinaDetail Key = "disciplina.detail"
)

// SQL returns the parameterized text for key. The catalogue is fixed at
// startup; an unknown key is a programming error.
func SQL(k Key) string {
	q, ok := queries[k]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown query key %q", k))
	}
	return q
}

var queries = map[Key]string{

	AlunoList: `
select
    count(alu.MATRICULA) over() as _total,
    alu.MATRICULA,
    alu.NOME
from SIGAA_ALUNO alu
inner join SIGAA_RL_ALUNO_CURSO ac on alu.MATRICULA = ac.ALUNO
left join SIGAA_RL_CURSO_UNIDADE cu on ac.CURSO = cu.CURSO
where (unaccent(alu.NOME) ilike '%'||unaccent(@nome)||'%' or @nome is null)
  and (ac.CURSO = @curso or @curso is null)
  and (cu.UNIDADE = @unidade or @unidade is null)
  and ((ac.PERIODO_LETIVO_REGISTRO = substring(@periodoIngresso from 1 for 4)||substring(@periodoIngresso from 6))
       or @periodoIngresso is null)
order by alu.MATRICULA, alu.NOME
offset @pageOffset
limit @pageSize`,

	AlunoDetail: `
select
    alu.MATRICULA,
    alu.NOME,
    ac.CURSO as CURSO_CODIGO,
    cur.NOME as CURSO_NOME,
    ac.CURRICULO,
    ac.IRA,
    substring(ac.PERIODO_LETIVO_REGISTRO from 1 for 4) as PERIODO_INGRESSO_ANO,
    substring(ac.PERIODO_LETIVO_REGISTRO from 5) as PERIODO_INGRESSO_NUMERO
from SIGAA_ALUNO alu
inner join SIGAA_RL_ALUNO_CURSO ac on alu.MATRICULA = ac.ALUNO
left join SIGAA_CURSO cur on ac.CURSO = cur.ID
where alu.MATRICULA = @id`,

	CursoList: `
select
  count(cur.ID) over() as _total,
  cur.ID,
  cur.NOME
from SIGAA_CURSO cur
inner join SIGAA_RL_CURSO_UNIDADE rcu on cur.ID = rcu.CURSO
where (unaccent(cur.NOME) ilike '%'||unaccent(@nome)||'%' or @nome is null)
  and (rcu.UNIDADE = @unidade or @unidade is null)
order by cur.ID, cur.NOME
offset @pageOffset
limit @pageSize`,

	CursoDetail: `
select
  cur.ID,
  cur.NOME,
  cur.GRAU_ACADEMICO,
  cur.TURNO,
  cur.MODALIDADE,
  cur.COORDENADOR
from SIGAA_CURSO cur
where cur.ID = @id`,

	CursoUnidades: `
select
  u.ID as CODIGO,
  u.NOME
from SIGAA_RL_CURSO_UNIDADE cu
inner join SIGAA_UNIDADE u on cu.UNIDADE = u.ID
where cu.CURSO = @curso
order by u.NOME`,

	// The status filter is deliberately absent here: /Curriculo filters by
	// status in memory after fetching the page (see the curricula dto).
	CurriculoList: `
select
    count(ec.ID) over() as _total,
    substring(ec.ID from 6) as ID,
    case
        when ec.STATUS = 'A' then 'ativo'
        when ec.STATUS = 'I' then 'inativo'
    end as STATUS,
    substring(ec.PERIODO_LETIVO_VIGOR from 1 for 4) as PERIODO_LETIVO_VIGOR_ANO,
    substring(ec.PERIODO_LETIVO_VIGOR from 5) as PERIODO_LETIVO_VIGOR_NUMERO,
    sc.ID as CURSO_CODIGO,
    sc.NOME as CURSO_NOME
from SIGAA_CURRICULO ec
inner join SIGAA_RL_CURRICULO_CURSO srcc on ec.ID = srcc.CURRICULO
inner join SIGAA_CURSO sc on srcc.CURSO = sc.ID
where srcc.CURSO = @curso
order by substring(ec.ID from 6)
offset @pageOffset
limit @pageSize`,

	// @id is already in the storage form "<curso>/<sufixo>"; the public form
	// is rebuilt in the projection.
	CurriculoDetail: `
select
    substring(ec.ID from 1 for 4) || '.' || substring(ec.ID from 6) as ID,
    case
        when ec.STATUS = 'A' then 'ativo'
        when ec.STATUS = 'I' then 'inativo'
    end as STATUS,
    substring(ec.PERIODO_LETIVO_VIGOR from 1 for 4) as PERIODO_LETIVO_VIGOR_ANO,
    substring(ec.PERIODO_LETIVO_VIGOR from 5) as PERIODO_LETIVO_VIGOR_NUMERO,
    ec.CARGA_HORARIA_MINIMA_TOTAL,
    ec.CARGA_HORARIA_MINIMA_OPT,
    ec.CARGA_HORARIA_OBR,
    ec.CARGA_HORARIA_ELETIVA_MAX,
    ec.CARGA_HORARIA_MAX_PERIODO,
    ec.NUM_PERIODOS,
    ec.MIN_PERIODOS,
    ec.MAX_PERIODOS,
    sc.ID as CURSO_ID,
    sc.NOME as CURSO_NOME
from SIGAA_CURRICULO ec
left join SIGAA_RL_CURRICULO_CURSO srcc on srcc.CURRICULO = ec.ID
left join SIGAA_CURSO sc on srcc.CURSO = sc.ID
where ec.ID = @id`,

	CurriculoDisciplinaList: `
select
    cd.DISCIPLINA as ID,
    d.NOME,
    cd.PERIODO as NIVEL,
    case
        when cd.TIPO = 'OBR' then 'obrigatoria'
        when cd.TIPO = 'OPT' then 'optativa'
    end as TIPO,
    u.ID as UNIDADE_CODIGO,
    u.NOME as UNIDADE_NOME
from SIGAA_RL_CURRICULO_DISCIPLINA cd
inner join SIGAA_DISCIPLINA d on cd.DISCIPLINA = d.ID
left join SIGAA_UNIDADE u on d.UNIDADE = u.ID
where cd.CURRICULO = @id
  and (cd.PERIODO = @nivel or @nivel is null)
  and (cd.TIPO = @tipo or @tipo is null)
  and (d.UNIDADE = @unidade or @unidade is null)
order by cd.PERIODO, cd.TIPO, d.NOME`,

	CurriculoDisciplinaDetail: `
select
    cd.DISCIPLINA as ID,
    d.NOME,
    cd.PERIODO as NIVEL,
    case
        when cd.TIPO = 'OBR' then 'obrigatoria'
        when cd.TIPO = 'OPT' then 'optativa'
    end as TIPO,
    d.CARGA_HORARIA_TEORICA,
    d.CARGA_HORARIA_PRATICA,
    0 as CARGA_HORARIA_EXTENSIONISTA,
    u.ID as UNIDADE_CODIGO,
    u.NOME as UNIDADE_NOME
from SIGAA_RL_CURRICULO_DISCIPLINA cd
inner join SIGAA_DISCIPLINA d on cd.DISCIPLINA = d.ID
left join SIGAA_UNIDADE u on d.UNIDADE = u.ID
where cd.CURRICULO = @id
  and cd.DISCIPLINA = @disciplina`,

	DisciplinaList: `
select
  count(dis.ID) over() as _total,
  dis.ID,
  dis.NOME,
  und.ID as UNIDADE_CODIGO,
  und.NOME as UNIDADE_NOME
from SIGAA_DISCIPLINA dis
left join SIGAA_UNIDADE und on dis.UNIDADE = und.ID
where (unaccent(dis.NOME) ilike '%'||unaccent(@nome)||'%' or @nome is null)
  and (dis.MODALIDADE = @modalidade or @modalidade is null)
  and (dis.UNIDADE = @unidade or @unidade is null)
order by dis.ID, dis.NOME
offset @pageOffset
limit @pageSize`,

	DisciplinaDetail: `
select
  dis.ID,
  dis.NOME,
  dis.MODALIDADE,
  dis.CARGA_HORARIA_TEORICA,
  dis.CARGA_HORARIA_PRATICA,
  dis.CARGA_HORARIA_TEORICA+dis.CARGA_HORARIA_PRATICA as CARGA_HORARIA_TOTAL,
  und.ID as UNIDADE_CODIGO,
  und.NOME as UNIDADE_NOME
from SIGAA_DISCIPLINA dis
left join SIGAA_UNIDADE und on dis.UNIDADE = und.ID
where dis.ID = @id`,
}
